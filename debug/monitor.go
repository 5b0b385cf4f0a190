// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/drake/rovno/screen"
)

// Enabled returns true if debug mode is active (ROVNO_DEBUG=1).
func Enabled() bool {
	return os.Getenv("ROVNO_DEBUG") == "1"
}

// Monitor periodically logs screen statistics when debug mode is enabled.
// Values are sampled without synchronization, so they are indicative only.
type Monitor struct {
	screen   *screen.Screen
	interval time.Duration
	ctx      context.Context
	logger   *log.Logger
}

// NewMonitor creates a new monitor for the given screen.
// If debug mode is not enabled, returns nil.
func NewMonitor(ctx context.Context, s *screen.Screen) *Monitor {
	if !Enabled() {
		return nil
	}

	return &Monitor{
		screen:   s,
		interval: 5 * time.Second,
		ctx:      ctx,
		logger:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Start begins the monitoring loop in a goroutine.
func (m *Monitor) Start() {
	if m == nil {
		return
	}
	go m.run()
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Println("[DEBUG] Monitor started")

	for {
		select {
		case <-m.ctx.Done():
			m.logger.Println("[DEBUG] Monitor stopped")
			return
		case <-ticker.C:
			m.logger.Printf("[DEBUG] screen: updates=%d cursor_visible=%v widgets=%d",
				m.screen.Updates(), m.screen.CursorVisible(), len(m.screen.Layout()))
		}
	}
}
