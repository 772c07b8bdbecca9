package backend

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/wfouche/tamboui-sub004/cellbuf"
	"github.com/wfouche/tamboui-sub004/geometry"
	"github.com/wfouche/tamboui-sub004/style"
	"github.com/wfouche/tamboui-sub004/term"
)

// IOError wraps a write/flush failure against the underlying terminal file
// descriptor.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return "backend: " + e.Op + ": " + e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }

// ANSI is the reference terminal backend: it writes CSI escape sequences
// to an *os.File (typically os.Stdout) through a buffered writer.
type ANSI struct {
	f   *os.File
	out *bufio.Writer
	raw *term.RawMode

	posBuf []byte

	lastStyle style.Style
}

// NewANSI wraps f (typically os.Stdout) as a Backend.
func NewANSI(f *os.File) *ANSI {
	return &ANSI{
		f:      f,
		out:    bufio.NewWriterSize(f, 64*1024),
		posBuf: make([]byte, 0, 32),
	}
}

func (a *ANSI) Size() (geometry.Size, error) {
	w, h, err := term.Size(a.f)
	if err != nil {
		return geometry.Size{}, &IOError{Op: "size", Err: err}
	}
	return geometry.Size{Width: w, Height: h}, nil
}

// Draw writes updates in order, coalescing cursor moves between adjacent
// cells and style escapes between cells sharing a style, and resetting to
// the default style once at the end if anything non-default was emitted.
func (a *ANSI) Draw(updates []cellbuf.Update) error {
	curX, curY := -1, -1
	for _, u := range updates {
		if u.Cell.Symbol == "" {
			// Wide-glyph continuation cell: its leading half (always
			// emitted alongside it) already advanced the cursor past
			// this column.
			curX = u.X + 1
			curY = u.Y
			continue
		}
		if curX != u.X || curY != u.Y {
			a.writeCursorPos(u.Y+1, u.X+1)
		}
		if !u.Cell.Style.Equal(a.lastStyle) {
			if !a.lastStyle.Equal(style.Default) {
				a.out.WriteString("\x1b[0m")
			}
			a.writeStyle(u.Cell.Style)
			a.lastStyle = u.Cell.Style
		}
		a.out.WriteString(u.Cell.Symbol)
		curX = u.X + u.Cell.Width
		curY = u.Y
	}
	if !a.lastStyle.Equal(style.Default) {
		a.out.WriteString("\x1b[0m")
		a.lastStyle = style.Default
	}
	return nil
}

func (a *ANSI) Flush() error {
	if err := a.out.Flush(); err != nil {
		return &IOError{Op: "flush", Err: err}
	}
	return nil
}

func (a *ANSI) Clear() error {
	a.out.WriteString("\x1b[2J\x1b[H")
	return nil
}

func (a *ANSI) ShowCursor() error { a.out.WriteString("\x1b[?25h"); return nil }
func (a *ANSI) HideCursor() error { a.out.WriteString("\x1b[?25l"); return nil }

func (a *ANSI) SetCursorPosition(x, y int) error {
	a.writeCursorPos(y+1, x+1)
	return nil
}

func (a *ANSI) SetCursorShape(shape CursorShape) error {
	switch shape {
	case CursorBlock:
		a.out.WriteString("\x1b[2 q")
	case CursorUnderline:
		a.out.WriteString("\x1b[4 q")
	case CursorBar:
		a.out.WriteString("\x1b[6 q")
	}
	return nil
}

func (a *ANSI) EnterAltScreen() error { a.out.WriteString("\x1b[?1049h"); return nil }
func (a *ANSI) LeaveAltScreen() error { a.out.WriteString("\x1b[?1049l"); return nil }

func (a *ANSI) EnableRawMode() error {
	raw, err := term.Enable(a.f)
	if err != nil {
		return &IOError{Op: "enableRawMode", Err: err}
	}
	a.raw = raw
	return nil
}

func (a *ANSI) DisableRawMode() error {
	if a.raw == nil {
		return nil
	}
	err := a.raw.Restore()
	a.raw = nil
	if err != nil {
		return &IOError{Op: "disableRawMode", Err: err}
	}
	return nil
}

func (a *ANSI) EnableMouse() error {
	a.out.WriteString("\x1b[?1000h\x1b[?1002h\x1b[?1006h")
	return nil
}

func (a *ANSI) DisableMouse() error {
	a.out.WriteString("\x1b[?1006l\x1b[?1002l\x1b[?1000l")
	return nil
}

func (a *ANSI) ScrollUp(n int) error {
	if n > 0 {
		fmt.Fprintf(a.out, "\x1b[%dS", n)
	}
	return nil
}

func (a *ANSI) ScrollDown(n int) error {
	if n > 0 {
		fmt.Fprintf(a.out, "\x1b[%dT", n)
	}
	return nil
}

// writeCursorPos writes a 1-based CSI row/col move without fmt overhead.
func (a *ANSI) writeCursorPos(row, col int) {
	a.posBuf = a.posBuf[:0]
	a.posBuf = append(a.posBuf, '\x1b', '[')
	a.posBuf = strconv.AppendInt(a.posBuf, int64(row), 10)
	a.posBuf = append(a.posBuf, ';')
	a.posBuf = strconv.AppendInt(a.posBuf, int64(col), 10)
	a.posBuf = append(a.posBuf, 'H')
	a.out.Write(a.posBuf)
}

func (a *ANSI) writeStyle(st style.Style) {
	if st.Add.Has(style.Bold) {
		a.out.WriteString("\x1b[1m")
	}
	if st.Add.Has(style.Dim) {
		a.out.WriteString("\x1b[2m")
	}
	if st.Add.Has(style.Italic) {
		a.out.WriteString("\x1b[3m")
	}
	if st.Add.Has(style.Underlined) {
		a.out.WriteString("\x1b[4m")
	}
	if st.Add.Has(style.SlowBlink) {
		a.out.WriteString("\x1b[5m")
	}
	if st.Add.Has(style.RapidBlink) {
		a.out.WriteString("\x1b[6m")
	}
	if st.Add.Has(style.Reversed) {
		a.out.WriteString("\x1b[7m")
	}
	if st.Add.Has(style.Hidden) {
		a.out.WriteString("\x1b[8m")
	}
	if st.Add.Has(style.CrossedOut) {
		a.out.WriteString("\x1b[9m")
	}
	a.writeColor(30, 40, st.Fg, st.Bg)
	a.writeUnderlineColor(st.Underline)
}

// writeColor emits foreground (base fgBase, bright fgBase+60) and
// background (bgBase/bgBase+60) escapes for fg/bg, per the reference wire
// format: Ansi -> 3k/9k (fg) or 4k/10k (bg), Indexed -> 38;5;N / 48;5;N,
// Rgb -> 38;2;R;G;B / 48;2;R;G;B, Reset -> 39 / 49.
func (a *ANSI) writeColor(fgBase, bgBase int, fg, bg style.Color) {
	a.writeOneColor(fgBase, fgBase+60, 38, 39, fg)
	a.writeOneColor(bgBase, bgBase+60, 48, 49, bg)
}

func (a *ANSI) writeOneColor(base, brightBase, extBase, resetCode int, c style.Color) {
	switch c.Kind {
	case style.ColorUnset:
		return
	case style.ColorReset:
		fmt.Fprintf(a.out, "\x1b[%dm", resetCode)
	case style.ColorAnsi:
		if c.Code < 8 {
			fmt.Fprintf(a.out, "\x1b[%dm", base+int(c.Code))
		} else {
			fmt.Fprintf(a.out, "\x1b[%dm", brightBase+int(c.Code)-8)
		}
	case style.ColorIndexed:
		fmt.Fprintf(a.out, "\x1b[%d;5;%dm", extBase, c.Index)
	case style.ColorRgb:
		fmt.Fprintf(a.out, "\x1b[%d;2;%d;%d;%dm", extBase, c.R, c.G, c.B)
	case style.ColorNamed:
		// A Named color with no concrete assignment renders as the
		// terminal's default — the reference writer has no palette to
		// resolve names against.
	}
}

func (a *ANSI) writeUnderlineColor(c style.Color) {
	switch c.Kind {
	case style.ColorIndexed:
		fmt.Fprintf(a.out, "\x1b[58;5;%dm", c.Index)
	case style.ColorRgb:
		fmt.Fprintf(a.out, "\x1b[58;2;%d;%d;%dm", c.R, c.G, c.B)
	}
}
