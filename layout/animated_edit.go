package layout

import (
	"github.com/wfouche/tamboui-sub004/signals"
	"github.com/wfouche/tamboui-sub004/simplex"
)

// AnimatedEdit drives one segment-size variable of a live solver via a
// reactive signal, so a caller can animate a split (e.g. a draggable pane
// divider) by writing to the signal instead of calling the solver
// directly. It's a thin layout-flavored name over signals.Edit, which does
// the actual binding work.
type AnimatedEdit = signals.Edit

// NewAnimatedEdit registers v as an edit variable on solver at strength and
// returns an AnimatedEdit that keeps it in sync with a driving signal.
func NewAnimatedEdit(solver *simplex.Solver, v *simplex.Variable, strength simplex.Strength) (*AnimatedEdit, error) {
	return signals.NewEdit(solver, v, strength)
}
