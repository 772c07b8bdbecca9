package cellbuf

import (
	"fmt"

	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"

	"github.com/wfouche/tamboui-sub004/geometry"
	"github.com/wfouche/tamboui-sub004/style"
)

// InvariantError reports a violated Buffer invariant: a size mismatch
// between two buffers being diffed.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "cellbuf: invariant violated: " + e.Msg }

// Buffer is a dense, row-major grid of Cells addressed by Area.
type Buffer struct {
	Area  geometry.Rect
	Cells []Cell

	contextStack []contextFrame
}

type contextFrame struct {
	area geometry.Rect
	key  string
	val  any
}

// Empty returns a buffer of area filled with the default blank cell.
func Empty(area geometry.Rect) *Buffer {
	return Filled(area, Blank)
}

// Filled returns a buffer of area with every cell set to c.
func Filled(area geometry.Rect, c Cell) *Buffer {
	cells := make([]Cell, area.Area())
	for i := range cells {
		cells[i] = c
	}
	return &Buffer{Area: area, Cells: cells}
}

// index returns the flat index for (x, y) and whether it lies in b.Area.
func (b *Buffer) index(x, y int) (int, bool) {
	if !b.Area.Contains(x, y) {
		return 0, false
	}
	row := y - b.Area.Y
	col := x - b.Area.X
	return row*b.Area.Width + col, true
}

// Get returns the cell at (x, y), or the zero Cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	i, ok := b.index(x, y)
	if !ok {
		return Cell{}
	}
	return b.Cells[i]
}

// Set writes a single cell at (x, y). Out-of-bounds writes are silently
// dropped, keeping rendering code branch-free.
func (b *Buffer) Set(x, y int, c Cell) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}
	if ctx := b.activeContext(x, y); ctx != nil {
		c.Style = c.Style.Patch(style.Default.WithExtension(ctx.key, ctx.val))
	}
	b.Cells[i] = c
}

// activeContext returns the innermost pushed context frame whose area
// covers (x, y), or nil if none applies.
func (b *Buffer) activeContext(x, y int) *contextFrame {
	for i := len(b.contextStack) - 1; i >= 0; i-- {
		f := &b.contextStack[i]
		if f.area.Contains(x, y) {
			return f
		}
	}
	return nil
}

// PushContextKey tags every subsequent write within area with an opaque
// key/value pair (stored as a style extension slot), until the matching
// PopContextKey. This lets a render pass mark a region for a downstream
// consumer (e.g. a focus/event router, out of this module's scope) to
// query later.
func (b *Buffer) PushContextKey(area geometry.Rect, key string, value any) {
	b.contextStack = append(b.contextStack, contextFrame{area: area, key: key, val: value})
}

// PopContextKey removes the most recently pushed context frame. It is a
// no-op if the stack is empty.
func (b *Buffer) PopContextKey() {
	if len(b.contextStack) == 0 {
		return
	}
	b.contextStack = b.contextStack[:len(b.contextStack)-1]
}

// SetString writes text left to right starting at (x, y), splitting it
// into grapheme clusters and accounting for display width.
func (b *Buffer) SetString(x, y int, text string, st style.Style) {
	col := x
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if col >= b.Area.Right() {
			break
		}
		cluster := gr.Str()
		w := clusterWidth(cluster)

		switch w {
		case 0:
			b.mergeIntoPrevious(col, y, cluster)
		case 1:
			b.clearLeadingHalfIfContinuation(col, y)
			b.Set(col, y, Cell{Symbol: cluster, Style: st, Width: 1})
			col++
		default: // 2 (or wider, clamped to 2)
			b.clearLeadingHalfIfContinuation(col, y)
			b.Set(col, y, Cell{Symbol: cluster, Style: st, Width: 2})
			b.Set(col+1, y, Cell{Symbol: "", Style: st, Width: 0})
			col += 2
		}
	}
}

// clearLeadingHalfIfContinuation implements the wide-glyph replacement
// policy: a write landing on the continuation half of an existing wide
// glyph replaces that glyph's leading half with a plain space, rather than
// leaving a dangling half-pair in place.
func (b *Buffer) clearLeadingHalfIfContinuation(col, y int) {
	if !b.Get(col, y).IsWideContinuation() || col <= b.Area.X {
		return
	}
	lead := b.Get(col-1, y)
	b.Set(col-1, y, Cell{Symbol: " ", Style: lead.Style, Width: 1})
}

// mergeIntoPrevious appends a zero-width cluster (combining mark, ZWJ) to
// the symbol already occupying the previous column, or drops it if there
// is no previous cell.
func (b *Buffer) mergeIntoPrevious(col, y int, cluster string) {
	if col <= b.Area.X {
		return
	}
	i, ok := b.index(col-1, y)
	if !ok {
		return
	}
	b.Cells[i].Symbol += cluster
}

// clusterWidth computes the display width of a grapheme cluster (0, 1, or
// 2) as the largest uniwidth.RuneWidth among its runes — a multi-rune
// cluster (e.g. emoji + ZWJ sequences) never renders wider than
// the widest glyph it represents on a fixed terminal grid.
func clusterWidth(cluster string) int {
	width := 0
	for _, r := range cluster {
		w := uniwidth.RuneWidth(r)
		if w > width {
			width = w
		}
	}
	return width
}

// SetStyle patches style onto every cell within the intersection of
// subArea and b.Area, leaving symbols and widths untouched.
func (b *Buffer) SetStyle(subArea geometry.Rect, st style.Style) {
	clipped := b.Area.Intersection(subArea)
	for y := clipped.Top(); y < clipped.Bottom(); y++ {
		for x := clipped.Left(); x < clipped.Right(); x++ {
			i, ok := b.index(x, y)
			if !ok {
				continue
			}
			b.Cells[i].Style = b.Cells[i].Style.Patch(st)
		}
	}
}

// Resize reallocates the buffer to a new area, preserving overlapping
// content and filling newly exposed cells with Blank.
func (b *Buffer) Resize(area geometry.Rect) {
	next := Empty(area)
	minW := min(b.Area.Width, area.Width)
	minH := min(b.Area.Height, area.Height)
	for y := 0; y < minH; y++ {
		for x := 0; x < minW; x++ {
			next.Set(area.X+x, area.Y+y, b.Get(b.Area.X+x, b.Area.Y+y))
		}
	}
	*b = *next
}

// Update is one emitted cell change from Buffer.Diff: position plus the
// new cell value.
type Update struct {
	X, Y int
	Cell Cell
}

// Diff computes the minimal ordered set of cell updates that would
// transform other into b: row-major scan order, and a changed
// wide-continuation cell is always emitted alongside its leading cell.
func (b *Buffer) Diff(other *Buffer) ([]Update, error) {
	if b.Area.Width != other.Area.Width || b.Area.Height != other.Area.Height {
		return nil, &InvariantError{Msg: fmt.Sprintf(
			"size mismatch: %dx%d vs %dx%d", b.Area.Width, b.Area.Height, other.Area.Width, other.Area.Height)}
	}

	var updates []Update
	w := b.Area.Width
	h := b.Area.Height
	emitted := make(map[int]bool)

	emit := func(idx int) {
		if emitted[idx] {
			return
		}
		emitted[idx] = true
		x := idx % w
		y := idx / w
		updates = append(updates, Update{X: b.Area.X + x, Y: b.Area.Y + y, Cell: b.Cells[idx]})
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if b.Cells[idx].Equal(other.Cells[idx]) {
				continue
			}
			if b.Cells[idx].IsWideContinuation() && x > 0 {
				emit(idx - 1)
			}
			emit(idx)
			if b.Cells[idx].IsWideLead() && x+1 < w {
				// A changed leading cell must be redrawn together with
				// its continuation half, even if the continuation's own
				// value happens to already match.
				emit(idx + 1)
			}
		}
	}

	// Re-sort in strict row-major order: the wide-pair emission above can
	// interleave indices out of order (emitting idx-1 after idx has
	// already been queued by a previous iteration is impossible, but
	// emitting idx+1 ahead of its own loop iteration is not).
	sortUpdates(updates, w)

	return updates, nil
}

func sortUpdates(u []Update, _ int) {
	// Simple insertion sort: update lists are short relative to terminal
	// size and already nearly sorted (row-major scan order), so this is
	// cheap in practice and keeps cellbuf dependency-free.
	for i := 1; i < len(u); i++ {
		j := i
		for j > 0 && less(u[j], u[j-1]) {
			u[j], u[j-1] = u[j-1], u[j]
			j--
		}
	}
}

func less(a, b Update) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
