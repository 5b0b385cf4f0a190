package widget

import (
	"fmt"
	"io"
	"slices"
)

// Compile-time check that ScrollingTextBox implements Widget
var _ Widget = (*ScrollingTextBox)(nil)

// DefaultScrollLimit is the scroll box height used when none is given.
const DefaultScrollLimit = 10

// ScrollingTextBox is a text box of fixed height. Appending past capacity
// evicts the oldest line, so the display scrolls like a log tail.
type ScrollingTextBox struct {
	lines []string
	limit int
}

// NewScrollingTextBox creates a scroll box holding exactly limit lines,
// initially empty strings. A non-positive limit falls back to
// DefaultScrollLimit.
func NewScrollingTextBox(limit int) *ScrollingTextBox {
	if limit <= 0 {
		limit = DefaultScrollLimit
	}
	return &ScrollingTextBox{
		lines: make([]string, limit),
		limit: limit,
	}
}

// Append pushes a line into the buffer, evicting the oldest line when the
// buffer is full. It does not draw anything; pair with Render, or use Push.
func (s *ScrollingTextBox) Append(line string) {
	if len(s.lines) >= s.limit {
		copy(s.lines, s.lines[1:])
		s.lines = s.lines[:len(s.lines)-1]
	}
	s.lines = append(s.lines, line)
}

// Render implements Widget. It writes the whole buffer top to bottom,
// oldest line first.
func (s *ScrollingTextBox) Render(w io.Writer) error {
	for _, line := range s.lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Push appends a line and redraws the whole buffer.
func (s *ScrollingTextBox) Push(w io.Writer, line string) error {
	s.Append(line)
	return s.Render(w)
}

// Lines returns a copy of the buffer contents.
func (s *ScrollingTextBox) Lines() []string {
	return slices.Clone(s.lines)
}

// Limit returns the fixed buffer height.
func (s *ScrollingTextBox) Limit() int { return s.limit }
