// Package backend defines the contract a rendering target implements —
// size reporting, damage-list drawing, cursor control, and terminal-mode
// toggles — plus a reference ANSI implementation and an in-memory
// recording backend for tests.
package backend

import (
	"github.com/wfouche/tamboui-sub004/cellbuf"
	"github.com/wfouche/tamboui-sub004/geometry"
)

// CursorShape selects the terminal cursor's visual shape.
type CursorShape int

const (
	CursorBlock CursorShape = iota
	CursorUnderline
	CursorBar
)

// Backend is anything a Terminal can draw a Frame's diff onto.
type Backend interface {
	// Size returns the backend's current size in cells.
	Size() (geometry.Size, error)

	// Draw writes a batch of cell updates. Order is guaranteed to match
	// cellbuf.Buffer.Diff's row-major emission order.
	Draw(updates []cellbuf.Update) error

	// Flush pushes any buffered output to its destination.
	Flush() error

	// Clear erases the entire visible area.
	Clear() error

	// ShowCursor and HideCursor toggle cursor visibility.
	ShowCursor() error
	HideCursor() error

	// SetCursorPosition moves the cursor to (x, y) in cell coordinates.
	SetCursorPosition(x, y int) error

	// SetCursorShape changes the cursor's visual shape.
	SetCursorShape(shape CursorShape) error

	// EnterAltScreen and LeaveAltScreen toggle the alternate screen
	// buffer.
	EnterAltScreen() error
	LeaveAltScreen() error

	// EnableRawMode and DisableRawMode toggle terminal raw mode.
	EnableRawMode() error
	DisableRawMode() error

	// EnableMouse and DisableMouse toggle mouse event reporting.
	EnableMouse() error
	DisableMouse() error

	// ScrollUp and ScrollDown scroll the visible region by n lines.
	ScrollUp(n int) error
	ScrollDown(n int) error
}

var (
	_ Backend = (*ANSI)(nil)
	_ Backend = (*Recording)(nil)
)
