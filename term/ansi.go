package term

import (
	"io"

	"github.com/muesli/termenv"
)

// Compile-time check that ANSI implements Control
var _ Control = (*ANSI)(nil)

// ANSI drives the terminal with VT escape sequences. It works on any
// VT-capable sink, which today includes the Windows console.
type ANSI struct {
	out       *termenv.Output
	cursorOps bool
}

// NewANSI creates an ANSI control writing to w.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{out: termenv.NewOutput(w), cursorOps: true}
}

// Clear implements Control.
func (a *ANSI) Clear() error {
	a.out.ClearScreen()
	return nil
}

// ClearLines implements Control.
func (a *ANSI) ClearLines(n int) error {
	if n < 1 {
		return nil
	}
	a.out.CursorUp(n)
	a.out.ClearLine()
	return nil
}

// HideCursor implements Control.
func (a *ANSI) HideCursor() error {
	if !a.cursorOps {
		return ErrUnsupported
	}
	a.out.HideCursor()
	return nil
}

// ShowCursor implements Control.
func (a *ANSI) ShowCursor() error {
	if !a.cursorOps {
		return ErrUnsupported
	}
	a.out.ShowCursor()
	return nil
}
