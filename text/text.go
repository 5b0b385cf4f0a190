// Package text provides ANSI-aware string measurement helpers.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// VisibleWidth returns the display width of a string in terminal cells,
// excluding ANSI codes. Wide runes (CJK) count as two cells.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// TruncateWidth cuts a plain string down to at most w display cells.
// It never splits a wide rune in half.
func TruncateWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

// PadWidth extends a plain string with trailing spaces to exactly w display
// cells. Strings already at or past w are returned unchanged.
func PadWidth(s string, w int) string {
	gap := w - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
