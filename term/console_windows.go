//go:build windows

package term

import (
	"os"
	"os/exec"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Compile-time check that Console implements Control
var _ Control = (*Console)(nil)

var (
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleCursorInfo = kernel32.NewProc("GetConsoleCursorInfo")
	procSetConsoleCursorInfo = kernel32.NewProc("SetConsoleCursorInfo")
)

// consoleCursorInfo mirrors the CONSOLE_CURSOR_INFO struct.
type consoleCursorInfo struct {
	size    uint32
	visible int32
}

// Console drives the terminal through the legacy Windows console API:
// cursor visibility is a bit in the console cursor-info descriptor, and a
// full clear shells out to cls.
type Console struct {
	handle windows.Handle
}

// NewConsole opens the process console output handle.
func NewConsole() (*Console, error) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return nil, err
	}
	return &Console{handle: h}, nil
}

// Clear implements Control.
func (c *Console) Clear() error {
	cmd := exec.Command("cmd", "/c", "cls")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

// ClearLines implements Control.
func (c *Console) ClearLines(n int) error {
	// Modern consoles accept VT sequences for relative cursor motion.
	return NewANSI(os.Stdout).ClearLines(n)
}

// HideCursor implements Control.
func (c *Console) HideCursor() error {
	return c.setCursorVisible(0)
}

// ShowCursor implements Control.
func (c *Console) ShowCursor() error {
	return c.setCursorVisible(1)
}

func (c *Console) setCursorVisible(visible int32) error {
	var info consoleCursorInfo
	r1, _, err := procGetConsoleCursorInfo.Call(
		uintptr(c.handle), uintptr(unsafe.Pointer(&info)))
	if r1 == 0 {
		return err
	}
	info.visible = visible
	r1, _, err = procSetConsoleCursorInfo.Call(
		uintptr(c.handle), uintptr(unsafe.Pointer(&info)))
	if r1 == 0 {
		return err
	}
	return nil
}
