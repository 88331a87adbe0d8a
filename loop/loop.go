// Package loop is the update scheduler: a callback invoked once per frame
// with the elapsed time since the previous frame, clamped so that consumers
// never see a catch-up leap after a stall.
package loop

import "time"

const (
	// NominalStep is the delta passed to the first update after activation,
	// when there is no previous tick to measure from. One frame at 60Hz.
	NominalStep = time.Second / 60

	// MaxStep caps the measured delta. A long stall, a suspended window or
	// a debugger pause, produces a single clamped step on resume.
	MaxStep = 50 * time.Millisecond
)

// Loop drives an update callback with clamped frame deltas. It is not safe
// for concurrent use: whichever goroutine calls Tick owns the loop.
type Loop struct {
	update func(time.Duration)
	active bool
	last   time.Time
}

// New is the preferred method of initialisation for the Loop type. The loop
// begins inactive.
func New(update func(time.Duration)) *Loop {
	return &Loop{update: update}
}

// SetActive starts and stops the loop. Deactivation discards the stored
// timestamp so that a pause of any length never leaks into the first delta
// after resume. Setting the current state again is a no-op.
func (l *Loop) SetActive(active bool) {
	if l.active == active {
		return
	}
	l.active = active
	l.last = time.Time{}
}

// Active reports whether ticks currently reach the update callback.
func (l *Loop) Active() bool {
	return l.active
}

// Tick drives one update with the caller's reading of the clock. An
// inactive loop ignores ticks entirely.
//
// The delta passed to the update callback is always in the interval
// (0, MaxStep]. The first tick after activation uses NominalStep, as does
// any tick with a repeated or rewound clock reading.
func (l *Loop) Tick(now time.Time) {
	if !l.active {
		return
	}

	dt := NominalStep
	if !l.last.IsZero() {
		dt = now.Sub(l.last)
		if dt <= 0 {
			dt = NominalStep
		} else if dt > MaxStep {
			dt = MaxStep
		}
	}
	l.last = now

	l.update(dt)
}
