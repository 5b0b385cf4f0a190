package widget

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/muesli/cancelreader"

	"github.com/drake/rovno/style"
)

// Compile-time check that Selector implements Widget
var _ Widget = (*Selector)(nil)

// ErrCanceled is reported when a pending Ask is aborted, either by
// canceling the input reader or by the input reaching EOF. It is a distinct
// outcome from any selected number; a parsed "0" is still a selection.
var ErrCanceled = errors.New("widget: selection canceled")

// Selector renders a numbered list of choices and reads the user's pick.
type Selector struct {
	header    *Header
	choices   []*Mapping
	directive string
	styles    style.Styles

	input    io.Reader
	canceled atomic.Bool
	reader   cancelreader.CancelReader
	br       *bufio.Reader
}

// NewSelector creates a selector. header may be nil. The directive colors
// the input prompt marker; empty means the default "blue". Input defaults
// to stdin, see SetInput.
func NewSelector(header *Header, choices []*Mapping, directive string) *Selector {
	if directive == "" {
		directive = style.DefaultSelector
	}
	return &Selector{
		header:    header,
		choices:   choices,
		directive: directive,
		styles:    style.DefaultStyles(),
		input:     os.Stdin,
	}
}

// SetInput replaces the reader Ask consumes. Must be called before the
// first Ask or Prompt.
func (s *Selector) SetInput(r io.Reader) { s.input = r }

// Render implements Widget. Choices are numbered from 1, counting across
// every pair of every mapping.
func (s *Selector) Render(w io.Writer) error {
	if s.header != nil {
		if err := s.header.Render(w); err != nil {
			return err
		}
	}
	i := 1
	for _, choice := range s.choices {
		for label, desc := range choice.AllFromFront() {
			line := s.styles.ChoiceLabel.Render(fmt.Sprintf("%d. %s", i, label))
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "   %s\n", s.styles.ChoiceDesc.Render(desc)); err != nil {
				return err
			}
			i++
		}
	}
	return nil
}

// Ask renders the choices, then prompts for a selection.
func (s *Selector) Ask(w io.Writer) (int, error) {
	if err := s.Render(w); err != nil {
		return 0, err
	}
	return s.Prompt(w)
}

// Prompt reads a selection without rendering the choices first. The three
// outcomes are distinct: a selected number, ErrCanceled, or a wrapped parse
// error for non-numeric input.
func (s *Selector) Prompt(w io.Writer) (int, error) {
	st, err := style.Compile(s.directive)
	if err != nil {
		return 0, fmt.Errorf("selector: %w", err)
	}
	if _, err := fmt.Fprint(w, st.Bold(true).Render("+")+" "); err != nil {
		return 0, err
	}

	line, err := s.readLine()
	if err != nil {
		if errors.Is(err, cancelreader.ErrCanceled) || errors.Is(err, io.EOF) {
			return 0, ErrCanceled
		}
		return 0, fmt.Errorf("selector: read: %w", err)
	}

	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("selector: parse %q: %w", line, err)
	}
	return n, nil
}

// CancelAsk aborts a pending or future Ask, which then reports ErrCanceled.
// Safe to call from another goroutine (e.g. a signal handler); everything
// else on Selector is single-threaded.
func (s *Selector) CancelAsk() {
	s.canceled.Store(true)
	if s.reader != nil {
		s.reader.Cancel()
	}
}

func (s *Selector) readLine() (string, error) {
	if s.canceled.Load() {
		return "", cancelreader.ErrCanceled
	}
	if s.br == nil {
		in := s.input
		if cr, err := cancelreader.NewReader(in); err == nil {
			s.reader = cr
			in = cr
		}
		s.br = bufio.NewReader(in)
	}
	line, err := s.br.ReadString('\n')
	if line == "" && err != nil {
		return "", err
	}
	// A partial line at EOF is still an answer.
	return line, nil
}
