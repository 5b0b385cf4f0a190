package widget

import (
	"fmt"
	"io"

	"github.com/drake/rovno/style"
)

// Compile-time check that Header implements Widget
var _ Widget = (*Header)(nil)

// Header renders a single line of text on a colored band.
type Header struct {
	text      string
	directive string
}

// NewHeader creates a header. An empty directive means the default
// "bold white on blue" band.
func NewHeader(text, directive string) *Header {
	if directive == "" {
		directive = style.DefaultHeader
	}
	return &Header{text: text, directive: directive}
}

// Text returns the header text.
func (h *Header) Text() string { return h.text }

// Render implements Widget.
func (h *Header) Render(w io.Writer) error {
	st, err := style.Compile(h.directive)
	if err != nil {
		return fmt.Errorf("header: %w", err)
	}
	_, err = fmt.Fprintln(w, st.Render(" "+h.text+" "))
	return err
}
