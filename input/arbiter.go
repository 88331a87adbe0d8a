package input

// Arbiter decides which source owns movement. It subscribes to an Events
// bus on creation and applies the transition rules to every movement event
// it sees:
//
//   - a significant keyboard vector claims ownership immediately, whatever
//     the current owner
//   - an idle keyboard vector surrenders ownership to the pointer in the
//     same event. there is no grace period
//   - a significant gamepad or pointer vector claims ownership only while
//     the keyboard is not the owner
//   - an insignificant vector from a non-owning source changes nothing
//
// Create one Arbiter per consumer and release it with Close when the
// consumer goes away.
type Arbiter struct {
	active Source
	last   [numSources]Vector
	remove func()
}

// NewArbiter is the preferred method of initialisation for the Arbiter
// type. The pointer owns movement initially.
func NewArbiter(events *Events) *Arbiter {
	a := &Arbiter{}
	a.remove = events.OnMove(a.observe)
	return a
}

// Close releases the bus subscription. The arbiter stops tracking events
// and its accessors freeze on their final values.
func (a *Arbiter) Close() {
	a.remove()
}

func (a *Arbiter) observe(v Vector, s Source) {
	a.last[s] = v

	switch s {
	case SourceKeyboard:
		if v.Significant() {
			a.active = SourceKeyboard
		} else if a.active == SourceKeyboard {
			a.active = SourcePointer
		}
	case SourceGamepad, SourcePointer:
		if v.Significant() && a.active != SourceKeyboard {
			a.active = s
		}
	}
}

// Active returns the source that currently owns movement.
func (a *Arbiter) Active() Source {
	return a.active
}

// Vector returns the last vector seen from the owning source. This is the
// fused output: an event from a non-owning source never changes it.
func (a *Arbiter) Vector() Vector {
	return a.last[a.active]
}

// Last returns the most recent vector seen from the named source, owning or
// not. Useful for diagnostic displays.
func (a *Arbiter) Last(s Source) Vector {
	if s < 0 || s >= numSources {
		return Vector{}
	}
	return a.last[s]
}
