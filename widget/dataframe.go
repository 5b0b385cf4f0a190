package widget

import (
	"fmt"
	"io"

	"github.com/drake/rovno/style"
)

// Compile-time check that DataFrame implements Widget
var _ Widget = (*DataFrame)(nil)

// DataFrame shows a list of data lines, each prefixed with a "+" marker
// colored by that line's style directive.
type DataFrame struct {
	data   []string
	colors []string
	header *Header
	styles style.Styles
}

// NewDataFrame creates a data frame. header may be nil. data and colors are
// paired positionally; lines past the shorter slice are not rendered.
func NewDataFrame(data []string, header *Header, colors []string) *DataFrame {
	return &DataFrame{
		data:   data,
		colors: colors,
		header: header,
		styles: style.DefaultStyles(),
	}
}

// Render implements Widget.
func (d *DataFrame) Render(w io.Writer) error {
	if d.header != nil {
		if err := d.header.Render(w); err != nil {
			return err
		}
	}
	for i := range min(len(d.data), len(d.colors)) {
		marker := d.styles.Bullet
		if d.colors[i] != "" {
			st, err := style.Compile(d.colors[i])
			if err != nil {
				return fmt.Errorf("dataframe: %w", err)
			}
			marker = st
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", marker.Render("+"), d.data[i]); err != nil {
			return err
		}
	}
	return nil
}
