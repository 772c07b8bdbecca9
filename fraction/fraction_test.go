package fraction

import "testing"

func TestReduce(t *testing.T) {
	f := New(6, 8)
	if f.String() != "3/4" {
		t.Errorf("New(6,8) = %s, want 3/4", f.String())
	}
}

func TestNegativeDenominatorNormalized(t *testing.T) {
	f := New(1, -2)
	if f.String() != "-1/2" {
		t.Errorf("New(1,-2) = %s, want -1/2", f.String())
	}
}

func TestAddSub(t *testing.T) {
	a := New(1, 3)
	b := New(1, 6)
	if got := a.Add(b); got.Compare(New(1, 2)) != 0 {
		t.Errorf("1/3+1/6 = %s, want 1/2", got)
	}
	if got := a.Sub(a); !got.IsZero() {
		t.Errorf("a-a should be zero, got %s", got)
	}
}

func TestMulDiv(t *testing.T) {
	a := New(2, 3)
	if got := a.Mul(a.Reciprocal()); got.Compare(One()) != 0 {
		t.Errorf("a * (1/a) should be 1, got %s", got)
	}
}

func TestCompareTotalOrder(t *testing.T) {
	a := New(1, 3)
	b := New(1, 2)
	if a.Compare(b) >= 0 {
		t.Errorf("1/3 should be < 1/2")
	}
	if b.Compare(a) <= 0 {
		t.Errorf("1/2 should be > 1/3")
	}
	if a.Compare(a) != 0 {
		t.Errorf("1/3 should equal itself")
	}
}

func TestToIntFloorsTowardNegativeInfinity(t *testing.T) {
	cases := []struct {
		num, den int64
		want     int64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{6, 3, 2},
		{-6, 3, -2},
	}
	for _, c := range cases {
		got := New(c.num, c.den).ToInt()
		if got != c.want {
			t.Errorf("New(%d,%d).ToInt() = %d, want %d", c.num, c.den, got, c.want)
		}
	}
}

func TestReduceIdempotent(t *testing.T) {
	f := New(6, 8)
	g := New(f.num.Int64(), f.den.Int64())
	if f.Compare(g) != 0 {
		t.Errorf("reduce not idempotent")
	}
}

func TestDivisionByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on division by zero")
		}
	}()
	_ = One().Div(Zero())
}
