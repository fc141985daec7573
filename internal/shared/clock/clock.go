// Package clock provides the time source passed into every operation that
// needs "now". A logical operation samples the clock exactly once and carries
// that timestamp through; nothing re-reads the wall clock mid-computation.
// All timestamps are UTC.
package clock

import "time"

// Clock yields the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System returns the wall-clock backed Clock used in production.
func System() Clock {
	return systemClock{}
}

// Fixed is a Clock pinned to a settable instant, for tests.
type Fixed struct {
	t time.Time
}

// NewFixed returns a Fixed clock at t (normalized to UTC).
func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t.UTC()}
}

func (f *Fixed) Now() time.Time {
	return f.t
}

// Set moves the fixed clock to t.
func (f *Fixed) Set(t time.Time) {
	f.t = t.UTC()
}

// Advance moves the fixed clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}
