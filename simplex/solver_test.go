package simplex

import "testing"

import "github.com/wfouche/tamboui-sub004/fraction"

func TestSimpleRequiredEquality(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")
	if err := s.AddConstraint(NewConstraint(Var(x).Minus(fraction.FromInt(5)), EQ)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Value(x); got.ToInt() != 5 {
		t.Errorf("x = %v, want 5", got)
	}
}

func TestConflictingRequiredEqualitiesFail(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")
	if err := s.AddConstraint(NewConstraint(Var(x).Minus(fraction.FromInt(5)), EQ)); err != nil {
		t.Fatalf("unexpected error on first constraint: %v", err)
	}
	c2 := NewConstraint(Var(x).Minus(fraction.FromInt(7)), EQ)
	err := s.AddConstraint(c2)
	if err == nil {
		t.Fatalf("expected UnsatisfiableConstraint")
	}
	if _, ok := err.(*UnsatisfiableConstraint); !ok {
		t.Errorf("expected *UnsatisfiableConstraint, got %T: %v", err, err)
	}
	// Solver state must be unchanged: x still resolves to 5.
	if got := s.Value(x); got.ToInt() != 5 {
		t.Errorf("x = %v after failed add, want unchanged 5", got)
	}
}

func TestChainedRequiredEqualities(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")
	y := NewVariable("y")
	z := NewVariable("z")

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	must(s.AddConstraint(NewConstraint(Var(x).Minus(fraction.FromInt(10)), EQ)))
	// y = x + 5
	must(s.AddConstraint(NewConstraint(Var(y).Sub(Var(x)).Minus(fraction.FromInt(5)), EQ)))
	// z = y + x
	must(s.AddConstraint(NewConstraint(Var(z).Sub(Var(y)).Sub(Var(x)), EQ)))

	if got := s.Value(x); got.ToInt() != 10 {
		t.Errorf("x = %v, want 10", got)
	}
	if got := s.Value(y); got.ToInt() != 15 {
		t.Errorf("y = %v, want 15", got)
	}
	if got := s.Value(z); got.ToInt() != 25 {
		t.Errorf("z = %v, want 25", got)
	}
}

func TestInequalityBoundsValue(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")

	// x <= 10, x >= 0, prefer x as large as possible via a weak pull.
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	must(s.AddConstraint(NewConstraint(Var(x).Minus(fraction.FromInt(10)), LE)))
	must(s.AddConstraint(NewConstraint(Var(x), GE)))
	must(s.AddConstraint(NewConstraintWithStrength(Var(x).Minus(fraction.FromInt(10)), EQ, Weak)))

	got := s.Value(x)
	if got.ToInt() != 10 {
		t.Errorf("x = %v, want 10 (pulled to its upper bound)", got)
	}
}

func TestDuplicateConstraintRejected(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")
	c := NewConstraint(Var(x).Minus(fraction.FromInt(1)), EQ)
	if err := s.AddConstraint(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := s.AddConstraint(c)
	if _, ok := err.(*DuplicateConstraint); !ok {
		t.Errorf("expected *DuplicateConstraint, got %T: %v", err, err)
	}
}

func TestRemoveConstraintRestoresPreviousSolution(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")

	c1 := NewConstraint(Var(x).Minus(fraction.FromInt(5)), EQ)
	if err := s.AddConstraint(c1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c2 := NewConstraintWithStrength(Var(x).Minus(fraction.FromInt(20)), EQ, Medium)
	if err := s.AddConstraint(c2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RemoveConstraint(c2); err != nil {
		t.Fatalf("unexpected error removing c2: %v", err)
	}
	if got := s.Value(x); got.ToInt() != 5 {
		t.Errorf("x = %v after removing c2, want 5", got)
	}
}

func TestEditVariableSuggestValue(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")
	if err := s.AddEditVariable(x, Strong); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SuggestValue(x, fraction.FromInt(42)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Value(x); got.ToInt() != 42 {
		t.Errorf("x = %v, want 42", got)
	}
	if err := s.SuggestValue(x, fraction.FromInt(7)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Value(x); got.ToInt() != 7 {
		t.Errorf("x = %v, want 7", got)
	}
}

func TestEditVariableRespectsRequiredBound(t *testing.T) {
	s := NewSolver()
	x := NewVariable("x")
	if err := s.AddConstraint(NewConstraint(Var(x).Minus(fraction.FromInt(10)), LE)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.AddEditVariable(x, Strong); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SuggestValue(x, fraction.FromInt(100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s.Value(x)
	if got.ToInt() > 10 {
		t.Errorf("x = %v, must not exceed the required upper bound of 10", got)
	}
}
