// Package style compiles style directives into lipgloss styles.
//
// A directive is a space-separated string such as "bold white on blue":
// attribute words, an optional foreground color, and an optional background
// color after the word "on". Colors are ANSI names, bright_ variants,
// palette indexes (bare or color(N)), or #rrggbb hex.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Directives are compiled on every render, so cache aggressively.
const cacheSize = 256

var cache *lru.Cache[string, lipgloss.Style]

func init() {
	cache, _ = lru.New[string, lipgloss.Style](cacheSize)
}

// ansiNames maps color words to their ANSI palette index.
var ansiNames = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"gray":    8,
	"grey":    8,
}

// Compile parses a directive and returns the equivalent lipgloss style.
// The empty directive compiles to the zero style. Compiled styles are
// cached, so repeated renders of the same directive are cheap.
func Compile(directive string) (lipgloss.Style, error) {
	if st, ok := cache.Get(directive); ok {
		return st, nil
	}

	st := lipgloss.NewStyle()
	background := false

	for _, tok := range strings.Fields(directive) {
		switch strings.ToLower(tok) {
		case "bold", "b":
			st = st.Bold(true)
		case "italic", "i":
			st = st.Italic(true)
		case "underline", "u":
			st = st.Underline(true)
		case "dim", "faint":
			st = st.Faint(true)
		case "blink":
			st = st.Blink(true)
		case "reverse":
			st = st.Reverse(true)
		case "strike":
			st = st.Strikethrough(true)
		case "on":
			if background {
				return lipgloss.Style{}, fmt.Errorf("style: repeated %q in %q", "on", directive)
			}
			background = true
		default:
			color, ok := parseColor(tok)
			if !ok {
				return lipgloss.Style{}, fmt.Errorf("style: unknown token %q in %q", tok, directive)
			}
			if background {
				st = st.Background(color)
				background = false
			} else {
				st = st.Foreground(color)
			}
		}
	}
	if background {
		return lipgloss.Style{}, fmt.Errorf("style: missing color after %q in %q", "on", directive)
	}

	cache.Add(directive, st)
	return st, nil
}

// MustCompile is Compile for directives known at build time.
func MustCompile(directive string) lipgloss.Style {
	st, err := Compile(directive)
	if err != nil {
		panic(err)
	}
	return st
}

func parseColor(tok string) (lipgloss.Color, bool) {
	tok = strings.ToLower(tok)

	if strings.HasPrefix(tok, "#") {
		if len(tok) != 7 {
			return "", false
		}
		if _, err := strconv.ParseUint(tok[1:], 16, 32); err != nil {
			return "", false
		}
		return lipgloss.Color(tok), true
	}

	// color(N) form
	if strings.HasPrefix(tok, "color(") && strings.HasSuffix(tok, ")") {
		tok = tok[len("color(") : len(tok)-1]
	}

	if n, err := strconv.Atoi(tok); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return lipgloss.Color(strconv.Itoa(n)), true
	}

	name, bright := strings.CutPrefix(tok, "bright_")
	if n, ok := ansiNames[name]; ok {
		if bright && n < 8 {
			n += 8
		}
		return lipgloss.Color(strconv.Itoa(n)), true
	}
	return "", false
}
