package widget

import (
	"testing"

	orderedmap "github.com/elliotchance/orderedmap/v3"
)

func TestInfoFrameRendersTitleThenBody(t *testing.T) {
	frame := NewInfoFrame([]*Mapping{
		Pair("Host", "example.org"),
		Pair("Port", "4000"),
	}, nil)
	lines := renderLines(t, frame)
	want := []string{"Host", "example.org", "Port", "4000"}
	if len(lines) != len(want) {
		t.Fatalf("rendered %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestInfoFrameRendersHeaderFirst(t *testing.T) {
	frame := NewInfoFrame([]*Mapping{Pair("Host", "example.org")}, NewHeader("Info", ""))
	lines := renderLines(t, frame)
	if lines[0] != " Info " {
		t.Errorf("first line = %q, want %q", lines[0], " Info ")
	}
}

func TestInfoFrameUsesFirstPairOnly(t *testing.T) {
	entry := Pair("Title", "body")
	entry.Set("Ignored", "never shown")
	frame := NewInfoFrame([]*Mapping{entry}, nil)
	lines := renderLines(t, frame)
	if len(lines) != 2 {
		t.Fatalf("rendered %v, want title and body only", lines)
	}
}

func TestInfoFrameSkipsEmptyEntries(t *testing.T) {
	empty := orderedmap.NewOrderedMap[string, string]()
	frame := NewInfoFrame([]*Mapping{empty, Pair("Host", "example.org")}, nil)
	lines := renderLines(t, frame)
	if len(lines) != 2 {
		t.Fatalf("rendered %v, want 2 lines", lines)
	}
}
