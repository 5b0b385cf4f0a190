// Package screen composes widgets into a vertical terminal layout and
// manages the terminal around it: clearing, redrawing, cursor visibility.
package screen

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/drake/rovno/term"
	"github.com/drake/rovno/widget"
)

// DefaultPartialClear is how many lines PartialClear erases when the caller
// does not say.
const DefaultPartialClear = 99

// Screen owns an ordered widget layout and the terminal it draws on.
// Widgets render in insertion order; the screen never reorders them or
// touches their contents.
type Screen struct {
	layout    []widget.Widget
	separator string
	out       io.Writer
	control   term.Control

	updates       int
	cursorVisible bool
}

// Option configures a Screen.
type Option func(*Screen)

// WithLayout sets the initial widget layout.
func WithLayout(widgets ...widget.Widget) Option {
	return func(s *Screen) { s.layout = widgets }
}

// WithSeparator sets the string written after every widget. Default "\n",
// which leaves one blank line between widgets.
func WithSeparator(sep string) Option {
	return func(s *Screen) { s.separator = sep }
}

// WithControl overrides the terminal control, e.g. term.NewConsole() on
// Windows or a recording fake in tests.
func WithControl(c term.Control) Option {
	return func(s *Screen) { s.control = c }
}

// New creates a screen writing to out. A nil out means stdout. Unless
// overridden, terminal control is picked for the sink via term.New.
func New(out io.Writer, opts ...Option) *Screen {
	s := &Screen{
		out:           out,
		separator:     "\n",
		cursorVisible: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.control == nil {
		s.control = term.New(s.out)
	}
	return s
}

// SetLayout replaces the widget layout.
func (s *Screen) SetLayout(widgets ...widget.Widget) {
	s.layout = widgets
}

// Layout returns a copy of the current layout.
func (s *Screen) Layout() []widget.Widget {
	return slices.Clone(s.layout)
}

// Clear fully erases the visible terminal content.
func (s *Screen) Clear() error {
	if err := s.control.Clear(); err != nil {
		return fmt.Errorf("screen: clear: %w", err)
	}
	s.updates++
	return nil
}

// PartialClear erases only the last lines of output by moving the cursor up
// and erasing the line it lands on. Non-positive lines means
// DefaultPartialClear.
func (s *Screen) PartialClear(lines int) error {
	if lines <= 0 {
		lines = DefaultPartialClear
	}
	if err := s.control.ClearLines(lines); err != nil {
		return fmt.Errorf("screen: partial clear: %w", err)
	}
	s.updates++
	return nil
}

// HideCursor hides the terminal cursor. On sinks without cursor control the
// term.ErrUnsupported error propagates; it is never swallowed.
func (s *Screen) HideCursor() error {
	if err := s.control.HideCursor(); err != nil {
		return err
	}
	s.cursorVisible = false
	return nil
}

// ShowCursor shows the terminal cursor.
func (s *Screen) ShowCursor() error {
	if err := s.control.ShowCursor(); err != nil {
		return err
	}
	s.cursorVisible = true
	return nil
}

// CursorVisible mirrors the cursor state as last set through this screen.
func (s *Screen) CursorVisible() bool { return s.cursorVisible }

// Print writes a line to the sink as-is, no styling or interpretation.
func (s *Screen) Print(text string) error {
	_, err := fmt.Fprintln(s.out, text)
	return err
}

// RenderLayout renders every widget in layout order, writing the separator
// after each one, the last included. The first widget error aborts the
// remaining layout.
func (s *Screen) RenderLayout() error {
	for _, w := range s.layout {
		if err := w.Render(s.out); err != nil {
			return fmt.Errorf("screen: render layout: %w", err)
		}
		if _, err := io.WriteString(s.out, s.separator); err != nil {
			return err
		}
	}
	return nil
}

// Updates returns how many full or partial clears this screen has done.
// Diagnostic only; nothing in the toolkit branches on it.
func (s *Screen) Updates() int { return s.updates }
