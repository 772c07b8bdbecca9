// Package cellbuf implements the 2-D styled cell grid: a Cell carries a
// grapheme cluster, a Style, and a display width; a Buffer is a dense
// row-major array of Cells addressed by a geometry.Rect, with
// setString/setStyle/diff and an area-scoped context-key stack for tagged
// regions.
package cellbuf

import "github.com/wfouche/tamboui-sub004/style"

// Cell is one display position: a grapheme cluster, its style, and its
// display width (0, 1, or 2).
type Cell struct {
	Symbol string
	Style  style.Style
	Width  int
}

// Blank is the default cell: a single space, default style, width 1.
var Blank = Cell{Symbol: " ", Style: style.Default, Width: 1}

// Continuation is the trailing half of a wide glyph: empty symbol, width 0.
var Continuation = Cell{Symbol: "", Style: style.Default, Width: 0}

// Equal compares symbol, style, and width — the three fields Buffer.Diff
// considers.
func (c Cell) Equal(other Cell) bool {
	return c.Symbol == other.Symbol && c.Width == other.Width && c.Style.Equal(other.Style)
}

// IsWideLead reports whether c is the leading cell of a 2-wide glyph.
func (c Cell) IsWideLead() bool { return c.Width == 2 }

// IsWideContinuation reports whether c is the empty trailing half of a
// 2-wide glyph.
func (c Cell) IsWideContinuation() bool { return c.Width == 0 && c.Symbol == "" }
