// Package term wraps OS terminal raw-mode enable/disable behind a small
// guard type, so a backend's EnableRawMode/DisableRawMode always restores
// the prior mode on close, including along panic-unwind paths.
package term

import (
	"os"

	"golang.org/x/term"
)

// RawMode holds the terminal state needed to restore cooked mode.
type RawMode struct {
	f     *os.File
	state *term.State
}

// Enable switches f into raw mode and returns a guard that restores the
// prior mode on Restore. Safe to call with a deferred Restore immediately
// after a successful Enable, including across panics.
func Enable(f *os.File) (*RawMode, error) {
	state, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	return &RawMode{f: f, state: state}, nil
}

// Restore puts f back into its pre-Enable mode. Safe to call on a nil
// receiver or more than once.
func (r *RawMode) Restore() error {
	if r == nil || r.state == nil {
		return nil
	}
	err := term.Restore(int(r.f.Fd()), r.state)
	r.state = nil
	return err
}

// Size returns f's current size in cells.
func Size(f *os.File) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}

// IsTerminal reports whether f is backed by a terminal device.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
