package widget

import (
	"fmt"
	"io"

	"github.com/drake/rovno/style"
)

// Compile-time check that InfoFrame implements Widget
var _ Widget = (*InfoFrame)(nil)

// InfoFrame renders title/body entries: bold title on one line, body on
// the next.
type InfoFrame struct {
	entries []*Mapping
	header  *Header
	styles  style.Styles
}

// NewInfoFrame creates an info frame. header may be nil. Each entry mapping
// is expected to hold a single title → body pair; only the first pair of
// each entry is rendered.
func NewInfoFrame(entries []*Mapping, header *Header) *InfoFrame {
	return &InfoFrame{
		entries: entries,
		header:  header,
		styles:  style.DefaultStyles(),
	}
}

// Render implements Widget.
func (f *InfoFrame) Render(w io.Writer) error {
	if f.header != nil {
		if err := f.header.Render(w); err != nil {
			return err
		}
	}
	for _, entry := range f.entries {
		front := entry.Front()
		if front == nil {
			continue
		}
		if _, err := fmt.Fprintln(w, f.styles.EntryTitle.Render(front.Key)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, f.styles.EntryBody.Render(front.Value)); err != nil {
			return err
		}
	}
	return nil
}
