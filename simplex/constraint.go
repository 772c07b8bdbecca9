package simplex

// Relation is the comparison a Constraint's expression is held to, against
// zero.
type Relation int

const (
	EQ Relation = iota
	LE
	GE
)

func (r Relation) String() string {
	switch r {
	case EQ:
		return "=="
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return "?"
	}
}

// Constraint pins an Expression to relation 0 at a given Strength. Identity
// is by pointer, so the same logical constraint added twice is two distinct
// entries to the solver.
type Constraint struct {
	Expr     Expression
	Rel      Relation
	Strength Strength
}

// NewConstraint builds a required-strength constraint.
func NewConstraint(expr Expression, rel Relation) *Constraint {
	return &Constraint{Expr: expr, Rel: rel, Strength: Required}
}

// NewConstraintWithStrength builds a constraint at an arbitrary strength.
func NewConstraintWithStrength(expr Expression, rel Relation, strength Strength) *Constraint {
	return &Constraint{Expr: expr, Rel: rel, Strength: strength}
}

// tag records the marker/other symbols a constraint introduced into the
// tableau, needed by removeConstraint to undo it.
type tag struct {
	marker Symbol
	other  Symbol // zero value (kind External, id 0) when unused
}

func (t tag) hasOther() bool { return t.other.id != 0 }
