package frame

import (
	"github.com/wfouche/tamboui-sub004/cellbuf"
	"github.com/wfouche/tamboui-sub004/geometry"
)

// Frame is the single render target a draw callback is handed: a view onto
// the terminal's current buffer plus the pending cursor request for this
// cycle.
type Frame struct {
	buf *cellbuf.Buffer

	cursorSet bool
	cursorX   int
	cursorY   int
}

// Area returns the region this frame covers.
func (f *Frame) Area() geometry.Rect { return f.buf.Area }

// Buffer returns the underlying cell buffer for widgets that write cells
// directly (SetString, SetStyle, PushContextKey/PopContextKey).
func (f *Frame) Buffer() *cellbuf.Buffer { return f.buf }

// SetCursorPosition requests that the cursor be shown at (x, y) once this
// frame is flushed. The last call within a frame wins.
func (f *Frame) SetCursorPosition(x, y int) {
	f.cursorSet = true
	f.cursorX, f.cursorY = x, y
}
