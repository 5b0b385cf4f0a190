// Package term abstracts the terminal-control primitives screens depend on:
// clearing, partial clearing, and cursor visibility.
package term

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrUnsupported is returned when a terminal operation has no primitive on
// the current platform or sink. Callers get an explicit error to branch on,
// never a silent no-op.
var ErrUnsupported = errors.New("term: unsupported terminal operation")

// Control is the capability screens use to manage the terminal.
type Control interface {
	// Clear erases the visible terminal content.
	Clear() error
	// ClearLines moves the cursor up n lines and erases the current line.
	ClearLines(n int) error
	HideCursor() error
	ShowCursor() error
}

// New returns a Control for the given sink. Terminal sinks get full ANSI
// control; anything else (pipes, buffers) still receives clear escapes but
// reports ErrUnsupported for cursor operations, since there is no cursor
// to hide.
func New(w io.Writer) Control {
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return NewANSI(w)
		}
	}
	a := NewANSI(w)
	a.cursorOps = false
	return a
}
