package simplex

import "sync/atomic"

var variableCounter int64

// Variable is an external, user-visible unknown the solver assigns a value
// to (e.g. a segment's start or length). Identity is by pointer: two
// variables with the same Name are still distinct unknowns.
type Variable struct {
	id   int64
	Name string
}

// NewVariable creates a fresh variable for debugging/logging purposes
// labeled name.
func NewVariable(name string) *Variable {
	id := atomic.AddInt64(&variableCounter, 1)
	return &Variable{id: id, Name: name}
}

func (v *Variable) String() string {
	if v.Name != "" {
		return v.Name
	}
	return "var"
}
