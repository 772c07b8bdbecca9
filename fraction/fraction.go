// Package fraction implements exact signed rational arithmetic.
//
// The layout solver in package simplex works exclusively over Fraction
// values so that Σ sizes = available holds deterministically across
// platforms, instead of accumulating floating-point rounding error.
package fraction

import (
	"fmt"
	"math/big"
)

// Fraction is a reduced signed rational num/den, den > 0.
//
// The zero value is not a valid Fraction; use Zero() or New.
type Fraction struct {
	num *big.Int
	den *big.Int
}

// Zero returns the fraction 0/1.
func Zero() Fraction { return New(0, 1) }

// One returns the fraction 1/1.
func One() Fraction { return New(1, 1) }

// FromInt returns n/1.
func FromInt(n int64) Fraction { return New(n, 1) }

// New builds a reduced Fraction from an integer numerator and denominator.
// It panics on den == 0 (callers that accept user-controlled denominators
// should check first and return their own error; New is a low-level
// constructor used once den is already known non-zero).
func New(num, den int64) Fraction {
	if den == 0 {
		panic("fraction: zero denominator")
	}
	return reduce(big.NewInt(num), big.NewInt(den))
}

func reduce(num, den *big.Int) Fraction {
	if den.Sign() < 0 {
		num = new(big.Int).Neg(num)
		den = new(big.Int).Neg(den)
	}
	if num.Sign() == 0 {
		return Fraction{num: big.NewInt(0), den: big.NewInt(1)}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(big.NewInt(1)) != 0 {
		num = new(big.Int).Quo(num, g)
		den = new(big.Int).Quo(den, g)
	}
	return Fraction{num: num, den: den}
}

// Add returns a + b.
func (a Fraction) Add(b Fraction) Fraction {
	num := new(big.Int).Add(
		new(big.Int).Mul(a.num, b.den),
		new(big.Int).Mul(b.num, a.den),
	)
	den := new(big.Int).Mul(a.den, b.den)
	return reduce(num, den)
}

// Sub returns a - b.
func (a Fraction) Sub(b Fraction) Fraction {
	return a.Add(b.Negate())
}

// Mul returns a * b.
func (a Fraction) Mul(b Fraction) Fraction {
	num := new(big.Int).Mul(a.num, b.num)
	den := new(big.Int).Mul(a.den, b.den)
	return reduce(num, den)
}

// Div returns a / b. Panics if b is zero (ArithmeticError at the caller's
// discretion — see IsZero before calling in user-facing paths).
func (a Fraction) Div(b Fraction) Fraction {
	if b.IsZero() {
		panic("fraction: division by zero")
	}
	num := new(big.Int).Mul(a.num, b.den)
	den := new(big.Int).Mul(a.den, b.num)
	return reduce(num, den)
}

// Negate returns -a.
func (a Fraction) Negate() Fraction {
	return Fraction{num: new(big.Int).Neg(a.num), den: new(big.Int).Set(a.den)}
}

// Abs returns |a|.
func (a Fraction) Abs() Fraction {
	if a.IsNegative() {
		return a.Negate()
	}
	return a
}

// Reciprocal returns 1/a. Panics if a is zero.
func (a Fraction) Reciprocal() Fraction {
	if a.IsZero() {
		panic("fraction: reciprocal of zero")
	}
	return reduce(new(big.Int).Set(a.den), new(big.Int).Set(a.num))
}

// Compare returns -1, 0, or 1 as a<b, a==b, a>b, via cross-multiplication
// (a.num*b.den vs b.num*a.den) — both denominators are always positive so
// no sign correction is needed.
func (a Fraction) Compare(b Fraction) int {
	lhs := new(big.Int).Mul(a.num, b.den)
	rhs := new(big.Int).Mul(b.num, a.den)
	return lhs.Cmp(rhs)
}

// IsZero reports whether a == 0.
func (a Fraction) IsZero() bool { return a.num.Sign() == 0 }

// IsNegative reports whether a < 0.
func (a Fraction) IsNegative() bool { return a.num.Sign() < 0 }

// IsPositive reports whether a > 0.
func (a Fraction) IsPositive() bool { return a.num.Sign() > 0 }

// ToInt floors a toward negative infinity, so that largest-remainder
// rounding (package layout) is correct for negative inputs too.
func (a Fraction) ToInt() int64 {
	q, r := new(big.Int).QuoRem(a.num, a.den, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (a.den.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q.Int64()
}

// Frac returns a - a.ToInt(), the non-negative fractional remainder used by
// largest-remainder rounding.
func (a Fraction) Frac() Fraction {
	return a.Sub(FromInt(a.ToInt()))
}

// Float64 returns an approximate float64 value, for display/debug only —
// never used inside the solver itself.
func (a Fraction) Float64() float64 {
	num := new(big.Float).SetInt(a.num)
	den := new(big.Float).SetInt(a.den)
	f, _ := new(big.Float).Quo(num, den).Float64()
	return f
}

func (a Fraction) String() string {
	if a.den.Cmp(big.NewInt(1)) == 0 {
		return a.num.String()
	}
	return fmt.Sprintf("%s/%s", a.num.String(), a.den.String())
}

// Equal reports whether a and b denote the same rational value.
func (a Fraction) Equal(b Fraction) bool { return a.Compare(b) == 0 }
