// Package input turns raw terminal stdin bytes into a stream of typed
// events: key presses, mouse actions, resizes, pastes, focus changes, and
// periodic ticks.
package input

import "time"

// Key identifies a non-character key, or KeyChar for a regular rune.
type Key int

const (
	KeyNull Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeySpace

	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft

	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyDelete
	KeyInsert

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyChar
)

// Mod is a bitset of modifier keys held during an event.
type Mod int

const (
	ModNone  Mod = 0
	ModCtrl  Mod = 1 << 0
	ModAlt   Mod = 1 << 1
	ModShift Mod = 1 << 2
)

func (m Mod) Has(f Mod) bool { return m&f != 0 }

// MouseButton identifies which mouse button an event reports for.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonWheel
)

// MouseKind is the action a MouseEvent reports.
type MouseKind int

const (
	MousePress MouseKind = iota
	MouseRelease
	MouseMove
	MouseScrollUp
	MouseScrollDown
	MouseDrag
)

// EventKind distinguishes the variant carried by an Event.
type EventKind int

const (
	EventKey EventKind = iota
	EventMouse
	EventResize
	EventPaste
	EventFocusIn
	EventFocusOut
	EventTick
)

// KeyEvent is a keyboard event: a named key, an optional rune (valid when
// Key is KeyChar), and the modifiers held.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Mod
}

// MouseEvent reports a button/position/action triple.
type MouseEvent struct {
	Button MouseButton
	X, Y   int
	Kind   MouseKind
	Mod    Mod
}

// ResizeEvent reports the terminal's new size in cells.
type ResizeEvent struct {
	Width, Height int
}

// PasteEvent carries bracketed-paste text as a single unit.
type PasteEvent struct {
	Text string
}

// TickEvent fires on the configured tick interval.
type TickEvent struct {
	Elapsed time.Duration
}

// Event is a tagged union over every event kind the reader emits; only the
// field matching Kind is populated.
type Event struct {
	Kind   EventKind
	Key    KeyEvent
	Mouse  MouseEvent
	Resize ResizeEvent
	Paste  PasteEvent
	Tick   TickEvent
}
