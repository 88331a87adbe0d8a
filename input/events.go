package input

// Events is the bus the captures publish on. The front-end creates one bus
// and hands it to every capture and every arbiter.
//
// Delivery is synchronous, on the goroutine of whoever published the event,
// and in no guaranteed order across subscribers. Subscribers must not add or
// remove subscriptions from inside a callback.
type Events struct {
	moveID   int
	moves    map[int]func(Vector, Source)
	pulseID  int
	triggers map[int]func()
}

// NewEvents is the preferred method of initialisation for the Events type.
func NewEvents() *Events {
	return &Events{
		moves:    make(map[int]func(Vector, Source)),
		triggers: make(map[int]func()),
	}
}

// OnMove registers a callback to run for every movement event. The returned
// function removes the registration.
func (e *Events) OnMove(f func(Vector, Source)) func() {
	id := e.moveID
	e.moveID++
	e.moves[id] = f
	return func() {
		delete(e.moves, id)
	}
}

// Move publishes a movement reading. The captures in this package call it
// for keyboard and gamepad activity; the front-end calls it directly for
// pointer steering.
func (e *Events) Move(v Vector, s Source) {
	for _, f := range e.moves {
		f(v, s)
	}
}
