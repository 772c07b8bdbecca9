package layout

import (
	"github.com/wfouche/tamboui-sub004/fraction"
	"github.com/wfouche/tamboui-sub004/geometry"
	"github.com/wfouche/tamboui-sub004/simplex"
)

// Named strengths for the per-constraint pulls the tableau wires up. Length
// outranks Percentage outranks Ratio, all below Required, so an
// over-determined layout degrades gracefully instead of overflowing area:
// the position chain's required ceiling is what actually enforces
// Σ sizes + spacing·(n−1) ≤ available.
var (
	lengthStrength     = simplex.NewStrength(10, 0, 0)
	percentageStrength = simplex.Strong
	ratioStrength      = simplex.NewStrength(0.1, 0, 0)
	fillGrowStrength   = simplex.Medium
	maxEqStrength      = simplex.NewStrength(0, 10, 0)
	tieStrength        = simplex.Weak
)

// minFillEpsilon is the proportionality scale substituted for a Fill(0)
// segment, small enough that it collapses toward zero relative to any
// sibling with a positive weight while still taking part in the tie.
var minFillEpsilon = fraction.New(1, 1_000_000)

// Split resolves l against area, returning one Rect per constraint in
// l.Constraints, in order.
//
// Length/Percentage/Ratio segments pull toward their exact size, strongest
// first; Min/Max segments are bounded by a required floor/ceiling and
// otherwise pull toward filling the available space or their ceiling; Fill
// segments pull toward filling the available space, proportional to
// weight, sharing that proportionality with any Min segments. A required
// position chain running through every segment is what keeps the resolved
// sizes from overflowing area when these pulls conflict.
func Split(area geometry.Rect, l Layout) ([]geometry.Rect, error) {
	n := len(l.Constraints)
	if n == 0 {
		return nil, nil
	}

	axisLen := l.axisLen(area) - l.marginBefore() - l.marginAfter()
	if axisLen < 0 {
		axisLen = 0
	}
	available := fraction.FromInt(int64(axisLen))

	sizes, err := solveSizes(l.Constraints, available, l.Spacing)
	if err != nil {
		return nil, err
	}

	ideal := largestRemainder(sizes)
	naturalSum := 0
	for _, v := range ideal {
		naturalSum += v
	}

	leftover := axisLen - naturalSum - l.Spacing*(n-1)
	if leftover < 0 {
		leftover = 0
	}
	lead, gaps := distributeGaps(l.Flex, leftover, n)

	rects := make([]geometry.Rect, n)
	offset := lead
	for i := 0; i < n; i++ {
		rects[i] = l.rectAt(area, offset, ideal[i])
		offset += ideal[i] + l.Spacing
		if i < n-1 {
			offset += gaps[i]
		}
	}
	return rects, nil
}

// solveSizes builds and solves the Cassowary tableau for one axis's segment
// sizes, given the constraint list, the available space after margins, and
// the spacing between segments.
//
// A required position chain (pos[0]=0, pos[i+1]=pos[i]+size[i]+spacing,
// pos[n] ≤ available) bounds the total regardless of which constraint
// kinds are present; every segment's own constraint is wired at its named
// strength on top of that.
func solveSizes(constraints []Constraint, available fraction.Fraction, spacing int) ([]fraction.Fraction, error) {
	n := len(constraints)
	s := simplex.NewSolver()

	sizeVars := make([]*simplex.Variable, n)
	posVars := make([]*simplex.Variable, n+1)
	for i := range constraints {
		sizeVars[i] = simplex.NewVariable("size")
	}
	for i := range posVars {
		posVars[i] = simplex.NewVariable("pos")
	}

	for _, v := range sizeVars {
		if err := s.AddConstraint(simplex.NewConstraint(simplex.Var(v), simplex.GE)); err != nil {
			return nil, err
		}
	}

	if err := s.AddConstraint(simplex.NewConstraint(simplex.Var(posVars[0]), simplex.EQ)); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		gap := fraction.Zero()
		if i < n-1 {
			gap = fraction.FromInt(int64(spacing))
		}
		expr := simplex.Var(posVars[i+1]).Sub(simplex.Var(posVars[i])).Sub(simplex.Var(sizeVars[i])).Minus(gap)
		if err := s.AddConstraint(simplex.NewConstraint(expr, simplex.EQ)); err != nil {
			return nil, err
		}
	}
	if err := s.AddConstraint(simplex.NewConstraint(
		simplex.Var(posVars[n]).Minus(available), simplex.LE,
	)); err != nil {
		return nil, err
	}

	for i, c := range constraints {
		v := sizeVars[i]
		switch c.kind {
		case KindLength:
			if err := addPull(s, v, c.target(available), lengthStrength); err != nil {
				return nil, err
			}
		case KindPercentage:
			if err := addPull(s, v, c.target(available), percentageStrength); err != nil {
				return nil, err
			}
		case KindRatio:
			if err := addPull(s, v, c.target(available), ratioStrength); err != nil {
				return nil, err
			}
		case KindMin:
			bound := fraction.FromInt(int64(c.length))
			if err := s.AddConstraint(simplex.NewConstraint(
				simplex.Var(v).Minus(bound), simplex.GE,
			)); err != nil {
				return nil, err
			}
			if err := addPull(s, v, available, fillGrowStrength); err != nil {
				return nil, err
			}
		case KindMax:
			bound := fraction.FromInt(int64(c.length))
			if err := s.AddConstraint(simplex.NewConstraint(
				simplex.Var(v).Minus(bound), simplex.LE,
			)); err != nil {
				return nil, err
			}
			if err := addPull(s, v, bound, maxEqStrength); err != nil {
				return nil, err
			}
		case KindFill:
			if err := addPull(s, v, available, fillGrowStrength); err != nil {
				return nil, err
			}
		}
	}

	if err := wireFillAndMinProportionality(s, constraints, sizeVars); err != nil {
		return nil, err
	}
	for i := 0; i < n-1; i++ {
		expr := simplex.Var(sizeVars[i]).Sub(simplex.Var(sizeVars[i+1]))
		if err := s.AddConstraint(simplex.NewConstraintWithStrength(expr, simplex.EQ, tieStrength)); err != nil {
			return nil, err
		}
	}

	out := make([]fraction.Fraction, n)
	for i, v := range sizeVars {
		val := s.Value(v)
		if val.IsNegative() {
			val = fraction.Zero()
		}
		out[i] = val
	}
	return out, nil
}

// addPull wires size = target at strength.
func addPull(s *simplex.Solver, v *simplex.Variable, target fraction.Fraction, strength simplex.Strength) error {
	return s.AddConstraint(simplex.NewConstraintWithStrength(
		simplex.Var(v).Minus(target), simplex.EQ, strength,
	))
}

// wireFillAndMinProportionality ties every Fill-or-Min segment's size to a
// single anchor (the first one found) at FILL_GROW strength: scale_j ·
// size_anchor = scale_anchor · size_j. Because equality is transitive, this
// star topology produces the same solution space as wiring every pair
// directly. Fill(w) uses scale=w (substituting minFillEpsilon for w=0 so it
// still collapses proportionally instead of forcing its siblings to zero);
// Min uses scale=1.
func wireFillAndMinProportionality(s *simplex.Solver, constraints []Constraint, vars []*simplex.Variable) error {
	var anchorVar *simplex.Variable
	var anchorScale fraction.Fraction

	for i, c := range constraints {
		scale, ok := proportionalityScale(c)
		if !ok {
			continue
		}
		if anchorVar == nil {
			anchorVar = vars[i]
			anchorScale = scale
			continue
		}
		expr := simplex.Var(anchorVar).Scaled(scale).Sub(simplex.Var(vars[i]).Scaled(anchorScale))
		if err := s.AddConstraint(simplex.NewConstraintWithStrength(expr, simplex.EQ, fillGrowStrength)); err != nil {
			return err
		}
	}
	return nil
}

func proportionalityScale(c Constraint) (fraction.Fraction, bool) {
	switch c.kind {
	case KindFill:
		if c.weight == 0 {
			return minFillEpsilon, true
		}
		return fraction.FromInt(int64(c.weight)), true
	case KindMin:
		return fraction.One(), true
	default:
		return fraction.Fraction{}, false
	}
}
