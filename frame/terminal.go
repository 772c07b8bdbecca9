package frame

import (
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/wfouche/tamboui-sub004/backend"
	"github.com/wfouche/tamboui-sub004/cellbuf"
	"github.com/wfouche/tamboui-sub004/geometry"
)

// ConcurrentDrawError is returned when Draw is called while a prior Draw on
// the same Terminal has not yet returned. The render cycle is defined to
// run on one logical thread at a time; Go makes goroutine identity
// deliberately hard to observe, so this reentrancy guard is the idiomatic
// stand-in for that affinity check.
type ConcurrentDrawError struct{}

func (e *ConcurrentDrawError) Error() string {
	return "frame: concurrent Draw call on the same Terminal"
}

// Config controls a Terminal's viewport, alternate-screen/raw-mode setup,
// and logging.
type Config struct {
	Viewport Viewport

	// RawMode enables terminal raw mode for the lifetime of the Terminal.
	RawMode bool

	// MouseCapture enables mouse reporting for the lifetime of the
	// Terminal; restored on Close.
	MouseCapture bool

	// Logger receives a debug record each time Draw reallocates the
	// buffers after a resize. A nil Logger disables logging.
	Logger *log.Logger
}

// Terminal owns the current/previous buffer pair and the draw cycle: query
// size, reallocate on resize, invoke the callback, diff, flush.
type Terminal struct {
	backend backend.Backend
	cfg     Config

	area     geometry.Rect
	current  *cellbuf.Buffer
	previous *cellbuf.Buffer

	topRow int

	cursorVisible bool
	drawing       atomic.Bool
}

// NewTerminal constructs a Terminal over b using cfg's viewport. For
// ViewportFullscreen it enters the alternate screen immediately; for every
// viewport it queries the backend's current size to resolve the drawing
// area. The cursor position is not queried, so a ViewportInline region
// starts at row 0.
func NewTerminal(b backend.Backend, cfg Config) (*Terminal, error) {
	t := &Terminal{backend: b, cfg: cfg}

	if cfg.Viewport.Kind == ViewportFullscreen {
		if err := b.EnterAltScreen(); err != nil {
			return nil, err
		}
	}
	if cfg.RawMode {
		if err := b.EnableRawMode(); err != nil {
			return nil, err
		}
	}
	if cfg.MouseCapture {
		if err := b.EnableMouse(); err != nil {
			return nil, err
		}
	}

	size, err := b.Size()
	if err != nil {
		return nil, err
	}
	t.area = cfg.Viewport.area(size, t.topRow)
	t.current = cellbuf.Empty(t.area)
	t.previous = cellbuf.Empty(t.area)
	return t, nil
}

// Draw runs one full render cycle: resize check, callback invocation,
// diff, backend draw, cursor policy, backend flush, buffer swap. It is atomic — if
// render returns an error, current/previous are not swapped and nothing
// beyond what the backend already buffered is flushed.
func (t *Terminal) Draw(render func(f *Frame) error) error {
	if !t.drawing.CompareAndSwap(false, true) {
		return &ConcurrentDrawError{}
	}
	defer t.drawing.Store(false)

	size, err := t.backend.Size()
	if err != nil {
		return err
	}
	newArea := t.cfg.Viewport.area(size, t.topRow)
	if newArea != t.area {
		t.logDebug("resizing", "from", t.area, "to", newArea)
		t.area = newArea
		t.current = cellbuf.Empty(t.area)
		t.previous = cellbuf.Empty(t.area)
		if err := t.backend.Clear(); err != nil {
			return err
		}
	} else {
		t.current = cellbuf.Empty(t.area)
	}

	f := &Frame{buf: t.current}
	if err := render(f); err != nil {
		return err
	}

	updates, err := t.current.Diff(t.previous)
	if err != nil {
		return err
	}
	if err := t.backend.Draw(updates); err != nil {
		return err
	}

	if err := t.applyCursorPolicy(f); err != nil {
		return err
	}

	if err := t.backend.Flush(); err != nil {
		return err
	}

	t.current, t.previous = t.previous, t.current
	return nil
}

func (t *Terminal) applyCursorPolicy(f *Frame) error {
	if !f.cursorSet {
		if err := t.backend.HideCursor(); err != nil {
			return err
		}
		t.cursorVisible = false
		return nil
	}
	if err := t.backend.SetCursorPosition(f.cursorX, f.cursorY); err != nil {
		return err
	}
	if !t.cursorVisible {
		if err := t.backend.ShowCursor(); err != nil {
			return err
		}
		t.cursorVisible = true
	}
	return nil
}

// Close restores raw mode, mouse capture, and the alternate screen in
// reverse of the order Config enabled them, and shows the cursor. For
// ViewportInline it also calls the backend's Clear, which erases the whole
// visible screen rather than only the reserved rows; the cursor is not
// moved back to where it was before the Terminal was constructed.
func (t *Terminal) Close() error {
	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if t.cfg.MouseCapture {
		record(t.backend.DisableMouse())
	}
	if t.cfg.RawMode {
		record(t.backend.DisableRawMode())
	}
	if t.cfg.Viewport.Kind == ViewportInline {
		record(t.backend.Clear())
	}
	if t.cfg.Viewport.Kind == ViewportFullscreen {
		record(t.backend.LeaveAltScreen())
	}
	record(t.backend.ShowCursor())
	record(t.backend.Flush())
	return firstErr
}

func (t *Terminal) logDebug(msg string, kv ...any) {
	if t.cfg.Logger != nil {
		t.cfg.Logger.Debug(msg, kv...)
	}
}
