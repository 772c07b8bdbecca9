package simplex

import "github.com/wfouche/tamboui-sub004/fraction"

// Strength is the three-tier priority of a constraint: strong, medium, and
// weak components combine into a single scalar via
// strong*1e6 + medium*1e3 + weak, so any amount of a higher tier always
// dominates any amount of a lower one. Required is a distinct sentinel
// value above every combination of the other three.
type Strength struct {
	strong, medium, weak float64
}

const strengthMax = 1000

func clampStrength(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > strengthMax {
		return strengthMax
	}
	return v
}

// NewStrength builds a strength from its three components, each clamped to
// [0, 1000].
func NewStrength(strong, medium, weak float64) Strength {
	return Strength{strong: clampStrength(strong), medium: clampStrength(medium), weak: clampStrength(weak)}
}

// Required is the non-negotiable priority: a constraint at this strength
// must be satisfied exactly, or addConstraint fails with
// UnsatisfiableConstraint.
var Required = NewStrength(strengthMax, strengthMax, strengthMax)

// Strong, Medium, and Weak are the conventional single-tier strengths.
var (
	Strong = NewStrength(1, 0, 0)
	Medium = NewStrength(0, 1, 0)
	Weak   = NewStrength(0, 0, 1)
)

// Value returns the combined scalar used to compare two strengths and to
// weight error variables in the objective.
func (s Strength) Value() float64 {
	return s.strong*1_000_000 + s.medium*1_000 + s.weak
}

// IsRequired reports whether s is exactly the Required sentinel.
func (s Strength) IsRequired() bool {
	return s.strong >= strengthMax && s.medium >= strengthMax && s.weak >= strengthMax
}

// fraction returns the strength's scalar as an exact Fraction for use as an
// objective-row coefficient weight. Any fractional part of the scalar is
// truncated; every strength this module builds (including the 0.1 strong
// component of layout's ratio strength) scales to a whole number.
func (s Strength) fraction() fraction.Fraction {
	return fraction.FromInt(int64(s.Value()))
}
