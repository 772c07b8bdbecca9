package frame

import "github.com/wfouche/tamboui-sub004/geometry"

// ViewportKind selects which of the three viewport layouts a Terminal uses.
type ViewportKind int

const (
	ViewportFullscreen ViewportKind = iota
	ViewportInline
	ViewportFixed
)

// Viewport describes the region of the terminal a Terminal draws into.
type Viewport struct {
	Kind ViewportKind

	// InlineHeight is the row count reserved below the cursor for
	// ViewportInline.
	InlineHeight int

	// FixedArea is the explicit static region for ViewportFixed.
	FixedArea geometry.Rect
}

// Fullscreen claims the entire terminal and enters the alternate screen.
func Fullscreen() Viewport { return Viewport{Kind: ViewportFullscreen} }

// Inline reserves h full-width rows starting at row 0, without touching
// the alternate screen. The cursor's position is not consulted, so the
// rows are not placed below it.
func Inline(h int) Viewport { return Viewport{Kind: ViewportInline, InlineHeight: h} }

// Fixed claims an explicit static region, without touching the alternate
// screen.
func Fixed(area geometry.Rect) Viewport { return Viewport{Kind: ViewportFixed, FixedArea: area} }

// area resolves the viewport to a concrete Rect given the backend's full
// size and, for Inline, the reserved region's top row (Terminal always
// passes 0).
func (v Viewport) area(size geometry.Size, topRow int) geometry.Rect {
	switch v.Kind {
	case ViewportInline:
		return geometry.New(0, topRow, size.Width, v.InlineHeight)
	case ViewportFixed:
		return v.FixedArea
	default:
		return geometry.New(0, 0, size.Width, size.Height)
	}
}
