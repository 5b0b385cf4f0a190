package widget

import (
	"bytes"
	"testing"
)

func TestHeaderPadsTextWithSpaces(t *testing.T) {
	lines := renderLines(t, NewHeader("Title", ""))
	if len(lines) != 1 || lines[0] != " Title " {
		t.Errorf("rendered %v, want [%q]", lines, " Title ")
	}
}

func TestHeaderRejectsBadDirective(t *testing.T) {
	h := NewHeader("Title", "glittery on blue")
	if err := h.Render(&bytes.Buffer{}); err == nil {
		t.Error("expected a directive error")
	}
}
