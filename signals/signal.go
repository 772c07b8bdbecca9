// Package signals provides a small reactive-primitives core (Signal,
// Effect, dependency tracking) and Edit, which binds a Signal[fraction.Fraction]
// to a simplex.Solver edit variable: writing to the signal re-suggests the
// variable's value, turning a live value change (e.g. a draggable split
// divider) into a nudge of the constraint solution.
package signals

import (
	"reflect"
	"sync"

	"github.com/wfouche/tamboui-sub004/fraction"
	"github.com/wfouche/tamboui-sub004/simplex"
)

// Getter is a type-erased interface for Signals.
type Getter interface {
	GetValue() interface{}
}

// Dependency represents something that can be depended on (a Signal).
type Dependency interface {
	subscribe(s Subscriber)
	unsubscribe(s Subscriber)
}

// Subscriber represents something that depends on others (an Effect).
type Subscriber interface {
	onDependencyUpdated()
	addDependency(d Dependency)
}

// Global State
var (
	activeSubscriber Subscriber
	activeMu         sync.Mutex
)

// Signal represents a reactive value.
type Signal[T any] struct {
	value       T
	subscribers map[Subscriber]struct{}
	mu          sync.RWMutex
}

// New creates a new Signal with an initial value.
func New[T any](val T) *Signal[T] {
	return &Signal[T]{
		value:       val,
		subscribers: make(map[Subscriber]struct{}),
	}
}

func (s *Signal[T]) subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[sub] = struct{}{}
}

func (s *Signal[T]) unsubscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers, sub)
}

func (s *Signal[T]) GetValue() interface{} {
	return s.Get()
}

func (s *Signal[T]) Get() T {
	// Dependency tracking.
	activeMu.Lock()
	current := activeSubscriber
	activeMu.Unlock()

	if current != nil {
		current.addDependency(s)
		s.subscribe(current)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *Signal[T]) Set(val T) {
	s.mu.Lock()
	if reflect.DeepEqual(s.value, val) {
		s.mu.Unlock()
		return
	}
	s.value = val

	// Snapshot subscribers.
	subs := make([]Subscriber, 0, len(s.subscribers))
	for sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	// Notify.
	for _, sub := range subs {
		sub.onDependencyUpdated()
	}
}

// Effect represents a side effect that reruns whenever a Signal it read on
// its last run changes.
type Effect struct {
	fn           func()
	dependencies map[Dependency]struct{}
	mu           sync.Mutex
	disposed     bool
}

func CreateEffect(fn func()) *Effect {
	e := &Effect{
		fn:           fn,
		dependencies: make(map[Dependency]struct{}),
	}
	e.Run()
	return e
}

func (e *Effect) addDependency(d Dependency) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dependencies[d] = struct{}{}
}

func (e *Effect) onDependencyUpdated() {
	e.Run()
}

func (e *Effect) Run() {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}

	// Unsubscribe from the previous run's dependencies, then re-subscribe
	// to whatever the new run actually touches.
	oldDeps := e.dependencies
	e.dependencies = make(map[Dependency]struct{})
	e.mu.Unlock()

	for dep := range oldDeps {
		dep.unsubscribe(e)
	}

	activeMu.Lock()
	prev := activeSubscriber
	activeSubscriber = e
	activeMu.Unlock()

	e.fn()

	activeMu.Lock()
	activeSubscriber = prev
	activeMu.Unlock()
}

func (e *Effect) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	e.disposed = true
	for dep := range e.dependencies {
		dep.unsubscribe(e)
	}
	e.dependencies = nil
}

// Edit ties a reactive Signal[fraction.Fraction] to a simplex.Solver edit
// variable: every Set fires an Effect that re-suggests the new value to the
// solver, so a caller drives a live-resizing split (e.g. a draggable pane
// divider) by writing to the signal instead of calling the solver directly.
type Edit struct {
	solver *simplex.Solver
	v      *simplex.Variable
	value  *Signal[fraction.Fraction]
	effect *Effect
}

// NewEdit registers v as an edit variable on solver at strength, seeds a
// signal with v's current solved value, and wires an Effect that
// re-suggests v's value on every subsequent change to the signal.
func NewEdit(solver *simplex.Solver, v *simplex.Variable, strength simplex.Strength) (*Edit, error) {
	if err := solver.AddEditVariable(v, strength); err != nil {
		return nil, err
	}

	e := &Edit{
		solver: solver,
		v:      v,
		value:  New(solver.Value(v)),
	}
	e.effect = CreateEffect(func() {
		val := e.value.Get()
		// An error here means v was removed from the solver out from under
		// this Edit; Close should be called instead of letting the signal
		// keep firing.
		_ = e.solver.SuggestValue(e.v, val)
	})
	return e, nil
}

// Set updates the driving signal's value, which fires the wired Effect and
// suggests the new value to the solver on this same call (Effects run
// synchronously on Set).
func (e *Edit) Set(value fraction.Fraction) {
	e.value.Set(value)
}

// Value returns the edit variable's last-solved value.
func (e *Edit) Value() fraction.Fraction {
	return e.solver.Value(e.v)
}

// Close disposes the wired Effect and removes v as an edit variable,
// leaving the solver free to treat it as an ordinary variable again.
func (e *Edit) Close() error {
	e.effect.Dispose()
	return e.solver.RemoveEditVariable(e.v)
}
