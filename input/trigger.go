package input

// The trigger channel reports discrete activation events: an activation key
// going down, any gamepad button going down. It is entirely independent of
// movement arbitration. A device does not need to own movement for its
// trigger pulses to be delivered.

// OnTrigger registers a callback to run for every trigger pulse. The
// returned function removes the registration.
func (e *Events) OnTrigger(f func()) func() {
	id := e.pulseID
	e.pulseID++
	e.triggers[id] = f
	return func() {
		delete(e.triggers, id)
	}
}

// Trigger publishes a trigger pulse. Every subscriber is notified exactly
// once. Edge detection is the publisher's responsibility: the captures in
// this package only call Trigger on a rising edge, never while a control is
// held.
func (e *Events) Trigger() {
	for _, f := range e.triggers {
		f()
	}
}
