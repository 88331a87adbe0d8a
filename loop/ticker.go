package loop

import "time"

// Ticker paces a Loop from the wall clock, for contexts with no display to
// pace the frames: headless running and soak tests. Under a display the
// front-end's own frame callback drives the loop and no Ticker is involved.
type Ticker struct {
	loop *Loop
	hz   float64

	rate  chan float64
	nudge chan func()
	quit  chan bool
	done  chan bool
}

// NewTicker is the preferred method of initialisation for the Ticker type.
// A hz value of zero or less selects 60Hz.
func NewTicker(l *Loop, hz float64) *Ticker {
	return &Ticker{
		loop:  l,
		hz:    hz,
		rate:  make(chan float64, 1),
		nudge: make(chan func(), 1),
		quit:  make(chan bool),
		done:  make(chan bool),
	}
}

func interval(hz float64) time.Duration {
	if hz <= 0 {
		hz = 60
	}
	return time.Duration(float64(time.Second) / hz)
}

// Start begins ticking in a new goroutine. The loop is driven from that
// goroutine, which therefore owns the loop and everything its update
// callback touches. Start must be called at most once.
func (t *Ticker) Start() {
	go t.run()
}

func (t *Ticker) run() {
	defer close(t.done)

	tick := time.NewTicker(interval(t.hz))
	defer tick.Stop()

	for {
		select {
		case <-t.quit:
			return
		case hz := <-t.rate:
			tick.Reset(interval(hz))
		case f := <-t.nudge:
			f()
		case now := <-tick.C:
			t.loop.Tick(now)
		}
	}
}

// SetRate changes the tick rate of a running ticker. Safe to call from any
// goroutine.
func (t *Ticker) SetRate(hz float64) {
	select {
	case t.rate <- hz:
	default:
	}
}

// Nudge runs f on the tick goroutine, between ticks. It is how another
// goroutine touches the loop or anything its update callback owns, the
// loop's activation flag in particular. Blocks until the function has been
// accepted; a stopped ticker never accepts.
func (t *Ticker) Nudge(f func()) {
	select {
	case t.nudge <- f:
	case <-t.done:
	}
}

// Stop ends the ticker and waits for the tick goroutine to exit: once Stop
// returns no further update can occur. A stopped Ticker cannot be
// restarted.
func (t *Ticker) Stop() {
	close(t.quit)
	<-t.done
}
