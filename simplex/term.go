package simplex

import "github.com/wfouche/tamboui-sub004/fraction"

// Term is one coefficient*variable summand of an Expression.
type Term struct {
	Var   *Variable
	Coeff fraction.Fraction
}

// Expression is a linear combination of variables plus a constant: the
// left-hand side of a Constraint, implicitly compared against zero.
type Expression struct {
	Terms    []Term
	Constant fraction.Fraction
}

// NewExpression builds an expression from terms with the given constant.
func NewExpression(constant fraction.Fraction, terms ...Term) Expression {
	return Expression{Terms: terms, Constant: constant}
}

// Var is a convenience single-variable, unit-coefficient expression.
func Var(v *Variable) Expression {
	return Expression{Terms: []Term{{Var: v, Coeff: fraction.One()}}, Constant: fraction.Zero()}
}

// Plus returns a new expression with c added to the constant.
func (e Expression) Plus(c fraction.Fraction) Expression {
	return Expression{Terms: e.Terms, Constant: e.Constant.Add(c)}
}

// Minus returns e with its constant reduced by c and every term's sign
// preserved (use Sub for subtracting another expression).
func (e Expression) Minus(c fraction.Fraction) Expression {
	return e.Plus(c.Negate())
}

// Sub returns e - other as a single expression.
func (e Expression) Sub(other Expression) Expression {
	terms := make([]Term, 0, len(e.Terms)+len(other.Terms))
	terms = append(terms, e.Terms...)
	for _, t := range other.Terms {
		terms = append(terms, Term{Var: t.Var, Coeff: t.Coeff.Negate()})
	}
	return Expression{Terms: terms, Constant: e.Constant.Sub(other.Constant)}
}

// Scaled returns every term and the constant multiplied by k.
func (e Expression) Scaled(k fraction.Fraction) Expression {
	terms := make([]Term, len(e.Terms))
	for i, t := range e.Terms {
		terms[i] = Term{Var: t.Var, Coeff: t.Coeff.Mul(k)}
	}
	return Expression{Terms: terms, Constant: e.Constant.Mul(k)}
}
