package widget

import (
	"fmt"
	"io"

	"github.com/drake/rovno/text"
)

// Compile-time checks that FixedLabel implements Widget and Stringer
var (
	_ Widget       = (*FixedLabel)(nil)
	_ fmt.Stringer = (*FixedLabel)(nil)
)

// DefaultLabelLimit is the label width used when none is given.
const DefaultLabelLimit = 10

// FixedLabel is a text label that always occupies a fixed number of
// terminal cells: short text is padded, long text is truncated with an
// ellipsis. Useful for aligning columns of free-form text.
type FixedLabel struct {
	label string
	limit int
}

// NewFixedLabel creates a label of exactly limit cells. A non-positive
// limit falls back to DefaultLabelLimit.
func NewFixedLabel(label string, limit int) *FixedLabel {
	if limit <= 0 {
		limit = DefaultLabelLimit
	}
	return &FixedLabel{label: label, limit: limit}
}

// Display returns the fixed-width form of the label. It is a pure function
// of the label state, so other widgets can embed the result in their own
// lines without rendering.
func (l *FixedLabel) Display() string {
	width := text.VisibleWidth(l.label)
	switch {
	case width < l.limit:
		return text.PadWidth(l.label, l.limit)
	case width == l.limit:
		return l.label
	case l.limit < 3:
		// No room for an ellipsis; plain cut.
		return text.PadWidth(text.TruncateWidth(l.label, l.limit), l.limit)
	default:
		return text.PadWidth(text.TruncateWidth(l.label, l.limit-3)+"...", l.limit)
	}
}

// String implements fmt.Stringer.
func (l *FixedLabel) String() string { return l.Display() }

// Render implements Widget. The line is written unstyled.
func (l *FixedLabel) Render(w io.Writer) error {
	_, err := fmt.Fprintln(w, l.Display())
	return err
}
