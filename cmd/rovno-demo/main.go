// rovno-demo is a testbed that composes every widget into one screen.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/drake/rovno/debug"
	"github.com/drake/rovno/screen"
	"github.com/drake/rovno/term"
	"github.com/drake/rovno/widget"
)

func main() {
	interactive := flag.Bool("interactive", true, "Prompt for a selection at the end")
	scroll := flag.Int("scroll", 5, "Scrolling text box height")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scr := screen.New(os.Stdout, screen.WithLayout(buildLayout(*scroll)...))
	debug.NewMonitor(ctx, scr).Start()

	if err := scr.HideCursor(); err != nil && !errors.Is(err, term.ErrUnsupported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := scr.ShowCursor(); err != nil && !errors.Is(err, term.ErrUnsupported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	if err := scr.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := scr.RenderLayout(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	box := widget.NewScrollingTextBox(*scroll)
	for i := 1; i <= *scroll+3; i++ {
		if err := box.Push(os.Stdout, fmt.Sprintf("log line %d", i)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		time.Sleep(150 * time.Millisecond)
		if i <= *scroll+2 {
			if err := scr.PartialClear(*scroll); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if !*interactive {
		return
	}

	sel := widget.NewSelector(
		widget.NewHeader("What next?", ""),
		[]*widget.Mapping{
			widget.Pair("Redraw", "Clear and render the layout again"),
			widget.Pair("Quit", "Leave the demo"),
		},
		"green",
	)

	// Ctrl+C while the selector waits becomes a clean cancellation.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		sel.CancelAsk()
	}()

	n, err := sel.Ask(os.Stdout)
	switch {
	case errors.Is(err, widget.ErrCanceled):
		_ = scr.Print("canceled")
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	case n == 1:
		if err := scr.Clear(); err == nil {
			_ = scr.RenderLayout()
		}
	default:
		_ = scr.Print("bye")
	}
}

func buildLayout(scroll int) []widget.Widget {
	stats := widget.NewDataFrame(
		[]string{"connected", "12 packets", "1 warning"},
		widget.NewHeader("Session", ""),
		[]string{"green", "cyan", "yellow"},
	)

	info := widget.NewInfoFrame([]*widget.Mapping{
		widget.Pair("Host", "mud.example.org:4000"),
		widget.Pair("Encoding", "UTF-8"),
	}, widget.NewHeader("Connection", "bold black on cyan"))

	return []widget.Widget{
		widget.NewHeader("rovno demo", ""),
		stats,
		info,
		widget.NewFixedLabel("fixed-width label demo", 16),
	}
}
