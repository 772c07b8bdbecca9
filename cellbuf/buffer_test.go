package cellbuf

import (
	"testing"

	"github.com/wfouche/tamboui-sub004/geometry"
	"github.com/wfouche/tamboui-sub004/style"
)

func area3x1() geometry.Rect { return geometry.New(0, 0, 3, 1) }

func TestDiffOfSelfIsEmpty(t *testing.T) {
	b := Empty(area3x1())
	b.SetString(0, 0, "hi", style.Default)
	updates, err := b.Diff(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updates) != 0 {
		t.Errorf("diff of a buffer with itself should be empty, got %v", updates)
	}
}

func TestDiffDeterministicRowMajor(t *testing.T) {
	prev := Empty(area3x1())
	cur := Empty(area3x1())
	cur.SetString(0, 0, "hi", style.Default)

	updates, err := cur.Diff(prev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %d: %+v", len(updates), updates)
	}
	if updates[0].X != 0 || updates[0].Y != 0 || updates[0].Cell.Symbol != "h" {
		t.Errorf("first update should be (0,0,'h'), got %+v", updates[0])
	}
	if updates[1].X != 1 || updates[1].Y != 0 || updates[1].Cell.Symbol != "i" {
		t.Errorf("second update should be (1,0,'i'), got %+v", updates[1])
	}
}

func TestSetStringWideGlyph(t *testing.T) {
	b := Empty(area3x1())
	b.SetString(0, 0, "中", style.Default) // CJK: 中

	lead := b.Get(0, 0)
	if lead.Width != 2 || lead.Symbol != "中" {
		t.Errorf("expected wide lead at (0,0), got %+v", lead)
	}
	cont := b.Get(1, 0)
	if cont.Width != 0 || cont.Symbol != "" {
		t.Errorf("expected continuation cell at (1,0), got %+v", cont)
	}
}

func TestOverwriteContinuationClearsLead(t *testing.T) {
	b := Empty(area3x1())
	b.SetString(0, 0, "中", style.Default)
	b.SetString(1, 0, "a", style.Default)

	lead := b.Get(0, 0)
	if lead.Symbol != " " || lead.Width != 1 {
		t.Errorf("overwriting the continuation half should clear the lead to a space, got %+v", lead)
	}
	mid := b.Get(1, 0)
	if mid.Symbol != "a" {
		t.Errorf("expected 'a' at (1,0), got %+v", mid)
	}
}

func TestSetStyleIdentityOnDefault(t *testing.T) {
	b := Empty(area3x1())
	b.SetString(0, 0, "hi", style.Default.WithAdd(style.Bold))
	before := append([]Cell(nil), b.Cells...)

	b.SetStyle(b.Area, style.Default)

	for i := range b.Cells {
		if b.Cells[i].Symbol != before[i].Symbol {
			t.Errorf("SetStyle with default style mutated symbol at %d", i)
		}
	}
}

func TestSetStyleClips(t *testing.T) {
	b := Empty(geometry.New(0, 0, 5, 1))
	b.SetStyle(geometry.New(3, 0, 10, 1), style.Default.WithAdd(style.Bold))
	if !b.Get(4, 0).Style.Add.Has(style.Bold) {
		t.Errorf("in-bounds portion of an out-of-range area should still be patched")
	}
	if b.Get(0, 0).Style.Add.Has(style.Bold) {
		t.Errorf("out-of-area cells should be untouched")
	}
}

func TestDiffSizeMismatchFails(t *testing.T) {
	a := Empty(geometry.New(0, 0, 3, 1))
	b := Empty(geometry.New(0, 0, 4, 1))
	if _, err := a.Diff(b); err == nil {
		t.Errorf("expected InvariantError on size mismatch")
	}
}

func TestOutOfBoundsWritesAreNoOps(t *testing.T) {
	b := Empty(area3x1())
	b.Set(100, 100, Cell{Symbol: "x", Width: 1})
	if b.Get(100, 100).Symbol != "" {
		t.Errorf("out-of-bounds reads should return the zero cell")
	}
}

func TestContextKeyTagsWrites(t *testing.T) {
	b := Empty(area3x1())
	b.PushContextKey(geometry.New(0, 0, 2, 1), "region", "status-bar")
	b.SetString(0, 0, "ab", style.Default)
	b.PopContextKey()
	b.SetString(2, 0, "c", style.Default)

	if b.Get(0, 0).Style.Extensions["region"] != "status-bar" {
		t.Errorf("cell within a pushed context should carry the tag")
	}
	if b.Get(2, 0).Style.Extensions["region"] != nil {
		t.Errorf("cell written after pop should not carry the tag")
	}
}
