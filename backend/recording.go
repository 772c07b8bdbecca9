package backend

import (
	"github.com/wfouche/tamboui-sub004/cellbuf"
	"github.com/wfouche/tamboui-sub004/geometry"
)

// Recording is an in-memory Backend for tests: it keeps a mirror Buffer
// that Draw applies updates to, and logs every call it receives except
// Size and SetCursorShape so tests can assert on ordering (cursor moves,
// alt-screen toggles, and so on).
type Recording struct {
	size geometry.Size

	Mirror *cellbuf.Buffer
	Calls  []string

	CursorVisible bool
	CursorX       int
	CursorY       int
	AltScreen     bool
	RawMode       bool
	MouseEnabled  bool
}

// NewRecording returns a Recording backend reporting the given size.
func NewRecording(w, h int) *Recording {
	return &Recording{
		size:   geometry.Size{Width: w, Height: h},
		Mirror: cellbuf.Empty(geometry.New(0, 0, w, h)),
	}
}

// Resize changes the size Size() reports on the next call.
func (r *Recording) Resize(w, h int) {
	r.size = geometry.Size{Width: w, Height: h}
	r.Mirror.Resize(geometry.New(0, 0, w, h))
}

func (r *Recording) Size() (geometry.Size, error) { return r.size, nil }

func (r *Recording) Draw(updates []cellbuf.Update) error {
	r.Calls = append(r.Calls, "draw")
	for _, u := range updates {
		r.Mirror.Set(u.X, u.Y, u.Cell)
	}
	return nil
}

func (r *Recording) Flush() error { r.Calls = append(r.Calls, "flush"); return nil }

func (r *Recording) Clear() error {
	r.Calls = append(r.Calls, "clear")
	r.Mirror = cellbuf.Empty(r.Mirror.Area)
	return nil
}

func (r *Recording) ShowCursor() error {
	r.Calls = append(r.Calls, "showCursor")
	r.CursorVisible = true
	return nil
}

func (r *Recording) HideCursor() error {
	r.Calls = append(r.Calls, "hideCursor")
	r.CursorVisible = false
	return nil
}

func (r *Recording) SetCursorPosition(x, y int) error {
	r.Calls = append(r.Calls, "setCursorPosition")
	r.CursorX, r.CursorY = x, y
	return nil
}

func (r *Recording) SetCursorShape(CursorShape) error { return nil }

func (r *Recording) EnterAltScreen() error {
	r.Calls = append(r.Calls, "enterAltScreen")
	r.AltScreen = true
	return nil
}

func (r *Recording) LeaveAltScreen() error {
	r.Calls = append(r.Calls, "leaveAltScreen")
	r.AltScreen = false
	return nil
}

func (r *Recording) EnableRawMode() error {
	r.Calls = append(r.Calls, "enableRawMode")
	r.RawMode = true
	return nil
}

func (r *Recording) DisableRawMode() error {
	r.Calls = append(r.Calls, "disableRawMode")
	r.RawMode = false
	return nil
}

func (r *Recording) EnableMouse() error {
	r.Calls = append(r.Calls, "enableMouse")
	r.MouseEnabled = true
	return nil
}

func (r *Recording) DisableMouse() error {
	r.Calls = append(r.Calls, "disableMouse")
	r.MouseEnabled = false
	return nil
}

func (r *Recording) ScrollUp(n int) error   { r.Calls = append(r.Calls, "scrollUp"); return nil }
func (r *Recording) ScrollDown(n int) error { r.Calls = append(r.Calls, "scrollDown"); return nil }
