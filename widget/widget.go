// Package widget provides the renderable components a screen composes:
// headers, labels, data and info frames, selectors, and scrolling text.
package widget

import (
	"io"

	orderedmap "github.com/elliotchance/orderedmap/v3"
)

// Widget is the interface for renderable UI elements. Render writes zero or
// more styled lines to the sink; the sink is injected per call so the same
// widget can draw to a terminal or a capturing buffer.
type Widget interface {
	Render(w io.Writer) error
}

// Mapping is an insertion-ordered string map. Selectors use it for
// label → description choices, info frames for title → body entries.
type Mapping = orderedmap.OrderedMap[string, string]

// Pair builds a single-entry mapping, the common case.
func Pair(key, value string) *Mapping {
	m := orderedmap.NewOrderedMap[string, string]()
	m.Set(key, value)
	return m
}
