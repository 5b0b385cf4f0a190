package widget

import (
	"bytes"
	"strings"
	"testing"
)

func TestScrollingTextBoxEvictsOldest(t *testing.T) {
	box := NewScrollingTextBox(3)
	for _, line := range []string{"a", "b", "c", "d"} {
		box.Append(line)
	}
	got := box.Lines()
	want := []string{"b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScrollingTextBoxLengthStaysAtLimit(t *testing.T) {
	box := NewScrollingTextBox(4)
	for i := 0; i < 20; i++ {
		box.Append("line")
		if got := len(box.Lines()); got != 4 {
			t.Fatalf("buffer length = %d after %d appends, want 4", got, i+1)
		}
	}
}

func TestScrollingTextBoxStartsEmptyLines(t *testing.T) {
	box := NewScrollingTextBox(2)
	got := box.Lines()
	if len(got) != 2 || got[0] != "" || got[1] != "" {
		t.Errorf("new buffer = %v, want two empty strings", got)
	}
}

func TestScrollingTextBoxRenderWritesWholeBuffer(t *testing.T) {
	box := NewScrollingTextBox(3)
	box.Append("x")
	var buf bytes.Buffer
	if err := box.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Two leftover empty slots plus the appended line.
	if got := buf.String(); got != "\n\nx\n" {
		t.Errorf("Render wrote %q, want %q", got, "\n\nx\n")
	}
}

func TestScrollingTextBoxPushAppendsAndRedraws(t *testing.T) {
	box := NewScrollingTextBox(2)
	var buf bytes.Buffer
	if err := box.Push(&buf, "hello"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if got := buf.String(); got != "\nhello\n" {
		t.Errorf("Push wrote %q, want %q", got, "\nhello\n")
	}
	if lines := box.Lines(); lines[1] != "hello" {
		t.Errorf("buffer = %v", lines)
	}
}

func TestScrollingTextBoxRenderLineCount(t *testing.T) {
	box := NewScrollingTextBox(5)
	for i := 0; i < 9; i++ {
		box.Append("entry")
	}
	var buf bytes.Buffer
	if err := box.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 5 {
		t.Errorf("rendered %d lines, want 5", got)
	}
}
