//go:build !windows

package term

// Console is the Windows console-handle control. It does not exist on other
// platforms; use NewANSI there.
type Console struct{}

// NewConsole reports that the console API is unavailable.
func NewConsole() (*Console, error) {
	return nil, ErrUnsupported
}

// Clear implements Control.
func (c *Console) Clear() error { return ErrUnsupported }

// ClearLines implements Control.
func (c *Console) ClearLines(n int) error { return ErrUnsupported }

// HideCursor implements Control.
func (c *Console) HideCursor() error { return ErrUnsupported }

// ShowCursor implements Control.
func (c *Console) ShowCursor() error { return ErrUnsupported }
