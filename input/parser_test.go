package input

import "testing"

func feed(bytes []byte) []Event {
	rawCh := make(chan byte, len(bytes)+1)
	for _, b := range bytes {
		rawCh <- b
	}
	close(rawCh)

	var got []Event
	emit := func(ev Event) { got = append(got, ev) }

	for {
		b, ok := <-rawCh
		if !ok {
			return got
		}
		if b == 0x1b {
			processEsc(rawCh, emit)
		} else {
			processChar(b, emit)
		}
	}
}

func TestArrowKeysParseFromCSI(t *testing.T) {
	got := feed([]byte("\x1b[A\x1b[B\x1b[C\x1b[D"))
	want := []Key{KeyArrowUp, KeyArrowDown, KeyArrowRight, KeyArrowLeft}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i, ev := range got {
		if ev.Kind != EventKey || ev.Key.Key != want[i] {
			t.Errorf("event %d = %+v, want key %v", i, ev, want[i])
		}
	}
}

func TestTildeTerminatedCSIMapsDeleteAndF5(t *testing.T) {
	got := feed([]byte("\x1b[3~\x1b[15~"))
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Key.Key != KeyDelete {
		t.Errorf("first key = %v, want KeyDelete", got[0].Key.Key)
	}
	if got[1].Key.Key != KeyF5 {
		t.Errorf("second key = %v, want KeyF5", got[1].Key.Key)
	}
}

func TestSS3ArrowAndFunctionKeys(t *testing.T) {
	got := feed([]byte("\x1bOA\x1bOP"))
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Key.Key != KeyArrowUp {
		t.Errorf("first key = %v, want KeyArrowUp", got[0].Key.Key)
	}
	if got[1].Key.Key != KeyF1 {
		t.Errorf("second key = %v, want KeyF1", got[1].Key.Key)
	}
}

func TestCtrlAndPlainCharsDistinguished(t *testing.T) {
	got := feed([]byte{0x03, 'a', 0x0d, 0x09})
	want := []KeyEvent{
		{Key: KeyChar, Rune: 'c', Mod: ModCtrl},
		{Key: KeyChar, Rune: 'a'},
		{Key: KeyEnter},
		{Key: KeyTab},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i, ev := range got {
		if ev.Key != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, ev.Key, want[i])
		}
	}
}

func TestSGRMousePressAndScroll(t *testing.T) {
	got := feed([]byte("\x1b[<0;10;5M\x1b[<64;1;1M"))
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Kind != EventMouse || got[0].Mouse.Kind != MousePress || got[0].Mouse.Button != MouseButtonLeft {
		t.Errorf("first event = %+v, want left press", got[0])
	}
	if got[0].Mouse.X != 9 || got[0].Mouse.Y != 4 {
		t.Errorf("first event coords = (%d,%d), want (9,4)", got[0].Mouse.X, got[0].Mouse.Y)
	}
	if got[1].Mouse.Kind != MouseScrollUp {
		t.Errorf("second event kind = %v, want MouseScrollUp", got[1].Mouse.Kind)
	}
}

func TestSGRMouseReleaseLowercaseM(t *testing.T) {
	got := feed([]byte("\x1b[<0;1;1m"))
	if len(got) != 1 || got[0].Mouse.Kind != MouseRelease {
		t.Fatalf("got %+v, want a single release event", got)
	}
}

func TestBracketedPasteCollectsEnclosedText(t *testing.T) {
	got := feed([]byte("\x1b[200~hello world\x1b[201~"))
	if len(got) != 1 || got[0].Kind != EventPaste {
		t.Fatalf("got %+v, want a single paste event", got)
	}
	if got[0].Paste.Text != "hello world" {
		t.Errorf("paste text = %q, want %q", got[0].Paste.Text, "hello world")
	}
}

func TestFocusInAndOut(t *testing.T) {
	got := feed([]byte("\x1b[I\x1b[O"))
	if len(got) != 2 || got[0].Kind != EventFocusIn || got[1].Kind != EventFocusOut {
		t.Fatalf("got %+v, want [FocusIn, FocusOut]", got)
	}
}
