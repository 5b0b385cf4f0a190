package term

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestANSIClearWritesEraseSequence(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf)
	if err := a.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[2J") {
		t.Errorf("Clear wrote %q, want erase-display sequence", buf.String())
	}
}

func TestANSIClearLines(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf)
	if err := a.ClearLines(2); err != nil {
		t.Fatalf("ClearLines: %v", err)
	}
	if got := buf.String(); got != "\x1b[2A\x1b[2K" {
		t.Errorf("ClearLines wrote %q, want %q", got, "\x1b[2A\x1b[2K")
	}
}

func TestANSIClearLinesIgnoresNonPositive(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf)
	if err := a.ClearLines(0); err != nil {
		t.Fatalf("ClearLines: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("ClearLines(0) wrote %q, want nothing", buf.String())
	}
}

func TestANSICursorVisibility(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf)
	if err := a.HideCursor(); err != nil {
		t.Fatalf("HideCursor: %v", err)
	}
	if err := a.ShowCursor(); err != nil {
		t.Fatalf("ShowCursor: %v", err)
	}
	if got := buf.String(); got != "\x1b[?25l\x1b[?25h" {
		t.Errorf("cursor ops wrote %q", got)
	}
}

func TestNewOnNonTerminalRefusesCursorOps(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	if err := c.HideCursor(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("HideCursor on buffer = %v, want ErrUnsupported", err)
	}
	if err := c.ShowCursor(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("ShowCursor on buffer = %v, want ErrUnsupported", err)
	}
	// Clears still go through as escapes.
	if err := c.Clear(); err != nil {
		t.Errorf("Clear on buffer = %v, want nil", err)
	}
	if buf.Len() == 0 {
		t.Error("Clear should still write escapes to non-terminal sinks")
	}
}

func TestNewConsoleUnsupportedOffWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("console API exists on windows")
	}
	if _, err := NewConsole(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("NewConsole = %v, want ErrUnsupported", err)
	}
}
