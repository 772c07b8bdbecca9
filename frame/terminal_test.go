package frame

import (
	"errors"
	"testing"

	"github.com/wfouche/tamboui-sub004/backend"
	"github.com/wfouche/tamboui-sub004/geometry"
	"github.com/wfouche/tamboui-sub004/style"
)

func TestDrawWritesCellsAndFlushesOnce(t *testing.T) {
	rec := backend.NewRecording(10, 3)
	term, err := NewTerminal(rec, Config{Viewport: Fullscreen()})
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}

	err = term.Draw(func(f *Frame) error {
		f.Buffer().SetString(0, 0, "hi", style.Default)
		return nil
	})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if got := rec.Mirror.Get(0, 0).Symbol; got != "h" {
		t.Errorf("Mirror(0,0) = %q, want \"h\"", got)
	}
	if rec.Calls[len(rec.Calls)-1] != "flush" {
		t.Errorf("last call = %q, want \"flush\"", rec.Calls[len(rec.Calls)-1])
	}
}

func TestDrawHidesCursorWhenNotSet(t *testing.T) {
	rec := backend.NewRecording(10, 3)
	term, _ := NewTerminal(rec, Config{Viewport: Fullscreen()})

	term.Draw(func(f *Frame) error { return nil })

	found := false
	for _, c := range rec.Calls {
		if c == "hideCursor" {
			found = true
		}
		if c == "showCursor" {
			t.Errorf("showCursor called when no cursor position was set")
		}
	}
	if !found {
		t.Errorf("expected hideCursor to be called, calls = %v", rec.Calls)
	}
}

func TestDrawShowsCursorWhenSet(t *testing.T) {
	rec := backend.NewRecording(10, 3)
	term, _ := NewTerminal(rec, Config{Viewport: Fullscreen()})

	term.Draw(func(f *Frame) error {
		f.SetCursorPosition(3, 1)
		return nil
	})

	if rec.CursorX != 3 || rec.CursorY != 1 {
		t.Errorf("cursor = (%d,%d), want (3,1)", rec.CursorX, rec.CursorY)
	}
	if !rec.CursorVisible {
		t.Errorf("expected cursor to be visible")
	}
}

func TestDrawReallocatesOnResizeAndClearsBackend(t *testing.T) {
	rec := backend.NewRecording(10, 3)
	term, _ := NewTerminal(rec, Config{Viewport: Fullscreen()})

	term.Draw(func(f *Frame) error { return nil })

	rec.Resize(20, 6)
	err := term.Draw(func(f *Frame) error {
		if f.Area().Width != 20 || f.Area().Height != 6 {
			t.Errorf("Frame area = %+v, want 20x6", f.Area())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Draw after resize: %v", err)
	}

	found := false
	for _, c := range rec.Calls {
		if c == "clear" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a clear call after resize, calls = %v", rec.Calls)
	}
}

func TestDrawIsAtomicOnCallbackError(t *testing.T) {
	rec := backend.NewRecording(5, 2)
	term, _ := NewTerminal(rec, Config{Viewport: Fullscreen()})
	before := len(rec.Calls)

	boom := errors.New("boom")
	err := term.Draw(func(f *Frame) error {
		f.Buffer().SetString(0, 0, "x", style.Default)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Draw error = %v, want boom", err)
	}
	if len(rec.Calls) != before {
		t.Errorf("expected no backend calls on callback error, got %v", rec.Calls[before:])
	}
}

func TestEnterAltScreenOnFullscreenConstruction(t *testing.T) {
	rec := backend.NewRecording(5, 2)
	_, err := NewTerminal(rec, Config{Viewport: Fullscreen()})
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	if !rec.AltScreen {
		t.Errorf("expected alt screen to be entered")
	}
}

func TestFixedViewportNeverTouchesAltScreen(t *testing.T) {
	rec := backend.NewRecording(20, 10)
	_, err := NewTerminal(rec, Config{Viewport: Fixed(geometry.New(2, 2, 5, 5))})
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	if rec.AltScreen {
		t.Errorf("Fixed viewport should not enter alt screen")
	}
}
