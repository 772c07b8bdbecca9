package layout

import "github.com/wfouche/tamboui-sub004/geometry"

// Direction is the axis a Layout splits a Rect along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Flex selects how leftover space (available minus the sum of resolved
// segment sizes) is distributed when no Fill constraint claims it.
type Flex int

const (
	// FlexStart packs every segment against the leading edge.
	FlexStart Flex = iota
	// FlexEnd packs every segment against the trailing edge.
	FlexEnd
	// FlexCenter centers the packed group of segments.
	FlexCenter
	// FlexSpaceBetween places all leftover space between segments, none
	// at the outer edges.
	FlexSpaceBetween
	// FlexSpaceAround places half-size gaps at the outer edges and
	// full-size gaps between segments.
	FlexSpaceAround
	// FlexSpaceEvenly places equal-size gaps at the edges and between
	// segments.
	FlexSpaceEvenly
)

// Layout describes how to split one Rect into sibling Rects.
type Layout struct {
	Direction   Direction
	Constraints []Constraint
	Margin      geometry.Margin
	Spacing     int
	Flex        Flex
}

// New builds a Layout splitting along dir with the given constraints, no
// margin, no spacing, and FlexStart.
func New(dir Direction, constraints ...Constraint) Layout {
	return Layout{Direction: dir, Constraints: constraints}
}

// WithMargin returns a copy of l with Margin set.
func (l Layout) WithMargin(m geometry.Margin) Layout {
	l.Margin = m
	return l
}

// WithSpacing returns a copy of l with Spacing set.
func (l Layout) WithSpacing(n int) Layout {
	l.Spacing = n
	return l
}

// WithFlex returns a copy of l with Flex set.
func (l Layout) WithFlex(f Flex) Layout {
	l.Flex = f
	return l
}

func (l Layout) axisLen(area geometry.Rect) int {
	if l.Direction == Horizontal {
		return area.Width
	}
	return area.Height
}

func (l Layout) marginBefore() int {
	if l.Direction == Horizontal {
		return l.Margin.Left
	}
	return l.Margin.Top
}

func (l Layout) marginAfter() int {
	if l.Direction == Horizontal {
		return l.Margin.Right
	}
	return l.Margin.Bottom
}

func (l Layout) crossMarginBefore() int {
	if l.Direction == Horizontal {
		return l.Margin.Top
	}
	return l.Margin.Left
}

func (l Layout) crossMarginAfter() int {
	if l.Direction == Horizontal {
		return l.Margin.Bottom
	}
	return l.Margin.Right
}

func (l Layout) crossLen(area geometry.Rect) int {
	if l.Direction == Horizontal {
		return area.Height
	}
	return area.Width
}

// rectAt builds the Rect for one segment at the given along-axis offset and
// length, keeping the cross axis clipped by the layout's cross margins.
func (l Layout) rectAt(area geometry.Rect, offset, length int) geometry.Rect {
	crossOrigin := l.crossMarginBefore()
	crossLen := l.crossLen(area) - l.crossMarginBefore() - l.crossMarginAfter()
	if crossLen < 0 {
		crossLen = 0
	}
	if l.Direction == Horizontal {
		return geometry.New(area.X+l.marginBefore()+offset, area.Y+crossOrigin, length, crossLen)
	}
	return geometry.New(area.X+crossOrigin, area.Y+l.marginBefore()+offset, crossLen, length)
}
