package simplex

import "github.com/wfouche/tamboui-sub004/fraction"

// Row represents one tableau equation. When keyed in Solver.rows under a
// basic symbol B, it means "B = Constant + Σ Cells[s]*s" for every other
// symbol s. Before a subject has been solved for, the same structure
// represents the zero equation "0 = Constant + Σ Cells[s]*s".
type Row struct {
	Constant fraction.Fraction
	Cells    map[Symbol]fraction.Fraction
}

func newRow(constant fraction.Fraction) *Row {
	return &Row{Constant: constant, Cells: make(map[Symbol]fraction.Fraction)}
}

// clone returns a deep copy (used for the phase-1 artificial objective).
func (r *Row) clone() *Row {
	cells := make(map[Symbol]fraction.Fraction, len(r.Cells))
	for s, c := range r.Cells {
		cells[s] = c
	}
	return &Row{Constant: r.Constant, Cells: cells}
}

// insertSymbolWithCoeff adds coeff to sym's existing coefficient (treating a
// missing entry as zero), removing the entry entirely if the result is
// zero.
func (r *Row) insertSymbolWithCoeff(sym Symbol, coeff fraction.Fraction) {
	next := r.coefficientFor(sym).Add(coeff)
	if next.IsZero() {
		delete(r.Cells, sym)
		return
	}
	r.Cells[sym] = next
}

func (r *Row) insertSymbol(sym Symbol) {
	r.insertSymbolWithCoeff(sym, fraction.One())
}

// insertRowWithCoeff merges other into r as if r += coeff*other.
func (r *Row) insertRowWithCoeff(other *Row, coeff fraction.Fraction) {
	r.Constant = r.Constant.Add(other.Constant.Mul(coeff))
	for s, c := range other.Cells {
		r.insertSymbolWithCoeff(s, c.Mul(coeff))
	}
}

// coefficientFor returns sym's coefficient, or zero if absent.
func (r *Row) coefficientFor(sym Symbol) fraction.Fraction {
	if c, ok := r.Cells[sym]; ok {
		return c
	}
	return fraction.Zero()
}

// negate flips the sign of every coefficient and the constant, turning
// "0 = Constant + Σcells" into its equivalent "0 = -Constant - Σcells".
func (r *Row) negate() {
	r.Constant = r.Constant.Negate()
	for s, c := range r.Cells {
		r.Cells[s] = c.Negate()
	}
}

// solveFor transforms the zero-equation r so that it instead represents
// "sym = <everything else>", given sym currently appears in r.Cells with a
// nonzero coefficient.
func (r *Row) solveFor(sym Symbol) {
	coeff := r.Cells[sym].Negate().Reciprocal()
	delete(r.Cells, sym)
	r.Constant = r.Constant.Mul(coeff)
	for s, c := range r.Cells {
		r.Cells[s] = c.Mul(coeff)
	}
}

// solveForPair re-expresses a row currently meaning "lhs = <r>" so that it
// instead means "rhs = <r'>", given rhs appears in r with a nonzero
// coefficient. Used when pivoting: lhs is the leaving basic symbol, rhs is
// the entering one.
func (r *Row) solveForPair(lhs, rhs Symbol) {
	r.Cells[lhs] = fraction.FromInt(-1)
	r.solveFor(rhs)
}

// substituteInPlace replaces every occurrence of sym in r's cells with
// replacement*coeff, where coeff was sym's coefficient in r.
func (r *Row) substituteInPlace(sym Symbol, replacement *Row) {
	coeff, ok := r.Cells[sym]
	if !ok {
		return
	}
	delete(r.Cells, sym)
	r.insertRowWithCoeff(replacement, coeff)
}
