package simplex

import (
	"sort"

	"github.com/wfouche/tamboui-sub004/fraction"
)

type editInfo struct {
	tag        tag
	constraint *Constraint
	constant   fraction.Fraction
}

// Solver is one Cassowary dual-simplex tableau. It is cheap to construct
// and meant to be built fresh for each independent solve
// (layout.Split builds a new Solver per call); SuggestValue/edit
// variables exist for callers — such as an animated layout edit — that keep
// a Solver alive across multiple suggested values.
type Solver struct {
	symbols symbolFactory

	rows      map[Symbol]*Row
	objective *Row
	artificial *Row // non-nil only while a phase-1 pass is in progress

	varSymbols map[*Variable]Symbol
	constraints map[*Constraint]tag

	edits map[*Variable]*editInfo
}

// NewSolver returns an empty solver with no constraints.
func NewSolver() *Solver {
	return &Solver{
		rows:        make(map[Symbol]*Row),
		objective:   newRow(fraction.Zero()),
		varSymbols:  make(map[*Variable]Symbol),
		constraints: make(map[*Constraint]tag),
		edits:       make(map[*Variable]*editInfo),
	}
}

func (s *Solver) symbolFor(v *Variable) Symbol {
	if sym, ok := s.varSymbols[v]; ok {
		return sym
	}
	sym := s.symbols.new(External)
	s.varSymbols[v] = sym
	return sym
}

// Value returns the current solved value of v (zero if v has never
// appeared in any added constraint).
func (s *Solver) Value(v *Variable) fraction.Fraction {
	sym, ok := s.varSymbols[v]
	if !ok {
		return fraction.Zero()
	}
	if row, ok := s.rows[sym]; ok {
		return row.Constant
	}
	return fraction.Zero()
}

// buildRow expands expr into a fresh zero-equation row, substituting any
// term whose variable symbol is already basic.
func (s *Solver) buildRow(expr Expression) *Row {
	row := newRow(expr.Constant)
	for _, term := range expr.Terms {
		if term.Coeff.IsZero() {
			continue
		}
		sym := s.symbolFor(term.Var)
		if basic, ok := s.rows[sym]; ok {
			row.insertRowWithCoeff(basic, term.Coeff)
		} else {
			row.insertSymbolWithCoeff(sym, term.Coeff)
		}
	}
	return row
}

// AddConstraint adds c to the tableau, returning UnsatisfiableConstraint if
// c is required and conflicts with what is already present, or
// DuplicateConstraint if c was already added.
func (s *Solver) AddConstraint(c *Constraint) error {
	if _, ok := s.constraints[c]; ok {
		return &DuplicateConstraint{Constraint: c}
	}

	row := s.buildRow(c.Expr)
	t := s.chooseMarkers(row, c)

	// chooseMarkers already weights both error symbols of a non-required EQ
	// constraint directly in the objective (so ePlus and eMinus carry the
	// same weight); LE/GE's single error symbol isn't weighted there, so it
	// is added here instead.
	if c.Rel != EQ && !c.Strength.IsRequired() && t.hasOther() {
		s.objective.insertSymbolWithCoeff(t.other, c.Strength.fraction())
	}

	if row.Constant.IsNegative() {
		row.negate()
	}

	subject := s.chooseSubject(row, t)
	if subject.id == 0 {
		if allDummy(row) {
			if !row.Constant.IsZero() {
				return &UnsatisfiableConstraint{Constraint: c}
			}
			// Trivially satisfied: nothing to add to the tableau, but the
			// constraint is still recorded so RemoveConstraint/duplicate
			// detection behave correctly.
			s.constraints[c] = t
			return nil
		}
		if err := s.addWithArtificialVariable(row); err != nil {
			return err
		}
		s.constraints[c] = t
		return nil
	}

	row.solveFor(subject)
	s.substitute(subject, row)
	s.rows[subject] = row
	s.constraints[c] = t

	if err := s.optimize(s.objective); err != nil {
		return err
	}
	return nil
}

// chooseMarkers introduces the slack/error/dummy symbols c's relation and
// strength require, inserting them into row with the appropriate signs,
// and returns the constraint's marker/other tag.
func (s *Solver) chooseMarkers(row *Row, c *Constraint) tag {
	required := c.Strength.IsRequired()

	switch {
	case c.Rel == EQ && required:
		dummy := s.symbols.new(Dummy)
		row.insertSymbol(dummy)
		return tag{marker: dummy}

	case c.Rel == EQ:
		ePlus := s.symbols.new(Error)
		eMinus := s.symbols.new(Error)
		row.insertSymbolWithCoeff(ePlus, fraction.One())
		row.insertSymbolWithCoeff(eMinus, fraction.FromInt(-1))
		weight := c.Strength.fraction()
		s.objective.insertSymbolWithCoeff(ePlus, weight)
		s.objective.insertSymbolWithCoeff(eMinus, weight)
		return tag{marker: ePlus, other: eMinus}

	case c.Rel == LE:
		slack := s.symbols.new(Slack)
		row.insertSymbolWithCoeff(slack, fraction.One())
		if required {
			return tag{marker: slack}
		}
		errSym := s.symbols.new(Error)
		row.insertSymbolWithCoeff(errSym, fraction.FromInt(-1))
		return tag{marker: slack, other: errSym}

	default: // GE
		slack := s.symbols.new(Slack)
		row.insertSymbolWithCoeff(slack, fraction.FromInt(-1))
		if required {
			return tag{marker: slack}
		}
		errSym := s.symbols.new(Error)
		row.insertSymbolWithCoeff(errSym, fraction.One())
		return tag{marker: slack, other: errSym}
	}
}

// chooseSubject picks the symbol row.solveFor should be called with: any
// external symbol present, else a slack/error symbol this constraint just
// introduced with a negative coefficient, else the zero Symbol meaning "no
// subject".
func (s *Solver) chooseSubject(row *Row, t tag) Symbol {
	var external Symbol
	foundExternal := false
	for sym := range row.Cells {
		if sym.kind == External && (!foundExternal || sym.id < external.id) {
			external = sym
			foundExternal = true
		}
	}
	if foundExternal {
		return external
	}
	for _, sym := range []Symbol{t.marker, t.other} {
		if sym.id == 0 {
			continue
		}
		if sym.kind != Slack && sym.kind != Error {
			continue
		}
		if c, ok := row.Cells[sym]; ok && c.IsNegative() {
			return sym
		}
	}
	return Symbol{}
}

func allDummy(row *Row) bool {
	for sym := range row.Cells {
		if sym.kind != Dummy {
			return false
		}
	}
	return true
}

// addWithArtificialVariable runs a phase-1 simplex pass to decide whether
// row (which has no natural subject) is consistent with what's already in
// the tableau, pivoting the artificial variable back out on success.
func (s *Solver) addWithArtificialVariable(row *Row) error {
	art := s.symbols.new(Slack) // behaves exactly like a slack once feasible
	artRow := row.clone()
	s.rows[art] = artRow
	s.artificial = artRow.clone()

	err := s.optimize(s.artificial)
	success := err == nil && s.artificial.Constant.IsZero()
	s.artificial = nil
	if err != nil {
		return err
	}
	if !success {
		// A nonzero minimum means art is still basic, so dropping its row
		// leaves the tableau equivalent to the one before this call.
		delete(s.rows, art)
		return &UnsatisfiableConstraint{}
	}

	if basicRow, ok := s.rows[art]; ok {
		if len(basicRow.Cells) == 0 {
			delete(s.rows, art)
			return nil
		}
		var entering Symbol
		found := false
		for sym := range basicRow.Cells {
			if !found || sym.id < entering.id {
				entering = sym
				found = true
			}
		}
		delete(s.rows, art)
		basicRow.solveForPair(art, entering)
		s.rows[entering] = basicRow
		s.substitute(entering, basicRow)
	}

	for _, r := range s.rows {
		delete(r.Cells, art)
	}
	delete(s.objective.Cells, art)
	return nil
}

// substitute replaces sym everywhere it appears — every tableau row, the
// objective, and (if a phase-1 pass is underway) the artificial objective —
// with replacement, after sym has just become basic under replacement.
func (s *Solver) substitute(sym Symbol, replacement *Row) {
	for _, r := range s.rows {
		r.substituteInPlace(sym, replacement)
	}
	s.objective.substituteInPlace(sym, replacement)
	if s.artificial != nil {
		s.artificial.substituteInPlace(sym, replacement)
	}
}

// optimize drives row to its minimum via entering/leaving pivots:
// repeatedly pick a non-dummy symbol with a negative coefficient in row to
// enter, find the tableau row that must leave to keep every basic variable
// non-negative, and pivot, until no negative coefficient remains.
func (s *Solver) optimize(row *Row) error {
	for {
		entering, ok := chooseEntering(row)
		if !ok {
			return nil
		}
		leaving, ok := s.chooseLeavingRow(entering)
		if !ok {
			return &InternalSolverError{Msg: "objective is unbounded"}
		}
		s.pivot(leaving, entering)
	}
}

func (s *Solver) pivot(leaving, entering Symbol) {
	pivotRow := s.rows[leaving]
	delete(s.rows, leaving)
	pivotRow.solveForPair(leaving, entering)
	s.rows[entering] = pivotRow
	s.substitute(entering, pivotRow)
}

// chooseEntering returns the lowest-id non-dummy symbol in row with a
// negative coefficient, for a deterministic, reproducible pivot sequence.
func chooseEntering(row *Row) (Symbol, bool) {
	var best Symbol
	found := false
	for sym, coeff := range row.Cells {
		if sym.kind == Dummy || !coeff.IsNegative() {
			continue
		}
		if !found || sym.id < best.id {
			best = sym
			found = true
		}
	}
	return best, found
}

// chooseLeavingRow runs the minimum-ratio test over every non-external
// basic row containing entering with a negative coefficient, tie-breaking
// on the lowest basic-symbol id.
func (s *Solver) chooseLeavingRow(entering Symbol) (Symbol, bool) {
	var best Symbol
	var bestRatio fraction.Fraction
	found := false

	for basic, row := range s.rows {
		if basic.kind == External {
			continue
		}
		coeff, ok := row.Cells[entering]
		if !ok || !coeff.IsNegative() {
			continue
		}
		ratio := row.Constant.Negate().Div(coeff)
		if !found || ratio.Compare(bestRatio) < 0 || (ratio.Compare(bestRatio) == 0 && basic.id < best.id) {
			best = basic
			bestRatio = ratio
			found = true
		}
	}
	return best, found
}

// RemoveConstraint undoes a previously-added constraint, restoring the
// tableau as if it had never been added.
func (s *Solver) RemoveConstraint(c *Constraint) error {
	t, ok := s.constraints[c]
	if !ok {
		return &UnknownConstraint{Constraint: c}
	}
	delete(s.constraints, c)

	if !c.Strength.IsRequired() {
		s.removeMarkerFromObjective(t.marker)
		s.removeMarkerFromObjective(t.other)
	}

	if _, ok := s.rows[t.marker]; ok {
		delete(s.rows, t.marker)
		return nil
	}

	leaving, ok := s.findLeavingForMarker(t.marker)
	if !ok {
		return &InternalSolverError{Msg: "failed to find a row to pivot the removed marker out of"}
	}
	row := s.rows[leaving]
	delete(s.rows, leaving)
	row.solveForPair(leaving, t.marker)
	s.rows[t.marker] = row
	s.substitute(t.marker, row)
	delete(s.rows, t.marker)

	return s.optimize(s.objective)
}

func (s *Solver) removeMarkerFromObjective(sym Symbol) {
	if sym.id == 0 {
		return
	}
	if _, ok := s.objective.Cells[sym]; ok {
		if row, ok := s.rows[sym]; ok {
			s.objective.substituteInPlace(sym, row)
		} else {
			delete(s.objective.Cells, sym)
		}
	}
}

// findLeavingForMarker picks a row to pivot marker out of when marker
// itself isn't basic: prefer a row where marker's coefficient is negative
// (so the pivot keeps that row's basic value valid), falling back to any
// row referencing marker at all.
func (s *Solver) findLeavingForMarker(marker Symbol) (Symbol, bool) {
	var negCandidate, anyCandidate Symbol
	haveNeg, haveAny := false, false

	var basics []Symbol
	for b := range s.rows {
		basics = append(basics, b)
	}
	sort.Slice(basics, func(i, j int) bool { return basics[i].id < basics[j].id })

	for _, basic := range basics {
		row := s.rows[basic]
		coeff, ok := row.Cells[marker]
		if !ok {
			continue
		}
		if !haveAny {
			anyCandidate = basic
			haveAny = true
		}
		if coeff.IsNegative() && !haveNeg {
			negCandidate = basic
			haveNeg = true
		}
	}
	if haveNeg {
		return negCandidate, true
	}
	return anyCandidate, haveAny
}

// AddEditVariable registers v as an edit variable at strength (which must
// not be Required), so SuggestValue can subsequently move its value.
func (s *Solver) AddEditVariable(v *Variable, strength Strength) error {
	if _, ok := s.edits[v]; ok {
		return &DuplicateEditVariable{Var: v}
	}
	c := NewConstraintWithStrength(Var(v), EQ, strength)
	if err := s.AddConstraint(c); err != nil {
		return err
	}
	s.edits[v] = &editInfo{tag: s.constraints[c], constraint: c, constant: fraction.Zero()}
	return nil
}

// RemoveEditVariable undoes AddEditVariable for v.
func (s *Solver) RemoveEditVariable(v *Variable) error {
	info, ok := s.edits[v]
	if !ok {
		return &UnknownEditVariable{Var: v}
	}
	if err := s.RemoveConstraint(info.constraint); err != nil {
		return err
	}
	delete(s.edits, v)
	return nil
}

// SuggestValue nudges edit variable v toward value, adjusting the tableau
// in place and running a dual-simplex pass to restore feasibility.
func (s *Solver) SuggestValue(v *Variable, value fraction.Fraction) error {
	info, ok := s.edits[v]
	if !ok {
		return &UnknownEditVariable{Var: v}
	}
	delta := value.Sub(info.constant)
	info.constant = value

	marker := info.tag.marker
	switch {
	case s.rows[marker] != nil:
		s.rows[marker].Constant = s.rows[marker].Constant.Add(delta)
	case info.tag.hasOther() && s.rows[info.tag.other] != nil:
		s.rows[info.tag.other].Constant = s.rows[info.tag.other].Constant.Sub(delta)
	default:
		for _, row := range s.rows {
			coeff, ok := row.Cells[marker]
			if !ok {
				continue
			}
			row.Constant = row.Constant.Sub(delta.Mul(coeff))
		}
	}

	return s.dualOptimize()
}

// dualOptimize restores row feasibility (every non-external basic row's
// constant non-negative) after SuggestValue has perturbed constants
// directly, by pivoting out negative rows against the objective's ratios.
func (s *Solver) dualOptimize() error {
	for {
		leaving, ok := s.mostNegativeRow()
		if !ok {
			return nil
		}
		row := s.rows[leaving]
		entering, ok := s.chooseDualEntering(row)
		if !ok {
			return &InternalSolverError{Msg: "dual optimization found no valid entering symbol"}
		}
		s.pivot(leaving, entering)
	}
}

func (s *Solver) mostNegativeRow() (Symbol, bool) {
	var best Symbol
	var bestConst fraction.Fraction
	found := false
	for basic, row := range s.rows {
		if basic.kind == External || !row.Constant.IsNegative() {
			continue
		}
		if !found || row.Constant.Compare(bestConst) < 0 || (row.Constant.Equal(bestConst) && basic.id < best.id) {
			best = basic
			bestConst = row.Constant
			found = true
		}
	}
	return best, found
}

// chooseDualEntering picks the symbol with positive coefficient in row
// minimizing objective-coefficient / row-coefficient, the dual-simplex
// ratio test SuggestValue uses to restore feasibility.
func (s *Solver) chooseDualEntering(row *Row) (Symbol, bool) {
	var best Symbol
	var bestRatio fraction.Fraction
	found := false
	for sym, coeff := range row.Cells {
		if !coeff.IsPositive() {
			continue
		}
		ratio := s.objective.coefficientFor(sym).Div(coeff)
		if !found || ratio.Compare(bestRatio) < 0 || (ratio.Compare(bestRatio) == 0 && sym.id < best.id) {
			best = sym
			bestRatio = ratio
			found = true
		}
	}
	return best, found
}
