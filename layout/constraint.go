// Package layout turns a Layout (direction, a list of Constraints, margin,
// spacing, and a flex-distribution policy) into concrete geometry.Rect
// segments by building a simplex.Solver tableau for the exact sizes and
// then integerizing the result with largest-remainder rounding.
package layout

import "github.com/wfouche/tamboui-sub004/fraction"

// Kind tags which of the six constraint variants a Constraint holds.
type Kind int

const (
	KindLength Kind = iota
	KindPercentage
	KindRatio
	KindMin
	KindMax
	KindFill
)

// Constraint describes how one segment's size should relate to the space
// available to the whole Layout.
type Constraint struct {
	kind Kind

	length int // Length, Min, Max: an exact cell count

	pct float64 // Percentage: 0..100

	ratioNum, ratioDen int // Ratio: ratioNum/ratioDen of the available space

	weight int // Fill: relative share of the leftover space
}

// Length pins a segment to exactly n cells.
func Length(n int) Constraint { return Constraint{kind: KindLength, length: n} }

// Percentage pins a segment to pct percent (0-100) of the available space.
func Percentage(pct float64) Constraint { return Constraint{kind: KindPercentage, pct: pct} }

// Ratio pins a segment to num/den of the available space.
func Ratio(num, den int) Constraint { return Constraint{kind: KindRatio, ratioNum: num, ratioDen: den} }

// Min floors a segment at n cells and otherwise grows to claim the
// available space, sharing it proportionally with any Fill or Min
// siblings.
func Min(n int) Constraint { return Constraint{kind: KindMin, length: n} }

// Max ceilings a segment at n cells; it settles at n by default and may
// shrink under pressure from other required constraints.
func Max(n int) Constraint { return Constraint{kind: KindMax, length: n} }

// Fill claims a share of whatever space Length/Percentage/Ratio/Min/Max
// constraints leave over, proportional to weight relative to any other
// Fill or Min segments in the same Layout. A weight of 0 still takes part
// in that proportionality but collapses toward zero relative to any
// sibling with a positive weight.
func Fill(weight int) Constraint {
	if weight < 0 {
		weight = 0
	}
	return Constraint{kind: KindFill, weight: weight}
}

// target returns the constraint's exact required size as a Fraction of
// available, for the variants whose size doesn't depend on sibling
// constraints (Length, Percentage, Ratio). Only valid for those kinds.
func (c Constraint) target(available fraction.Fraction) fraction.Fraction {
	switch c.kind {
	case KindLength:
		return fraction.FromInt(int64(c.length))
	case KindPercentage:
		return available.Mul(fraction.New(int64(c.pct*1000), 100*1000))
	case KindRatio:
		return available.Mul(fraction.New(int64(c.ratioNum), int64(c.ratioDen)))
	default:
		return fraction.Zero()
	}
}
