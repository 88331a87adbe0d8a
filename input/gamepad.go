package input

import (
	"math"

	"github.com/skerrett/yoke/input/curve"
)

// Button identifies one of the digital direction buttons on a pad.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Pad is the device surface the gamepad capture polls. Implementations are
// front-end specific. A pad that never reports itself connected is the
// correct implementation for a platform without gamepad support: every poll
// against it degrades to a no-op.
type Pad interface {
	// Connected reports whether a physical device currently backs the pad.
	Connected() bool

	// Axis returns the reading for the numbered analog axis: 0 is
	// horizontal, 1 is vertical. Values are in the range [-1, 1] with
	// positive meaning right and down.
	Axis(n int) float64

	// DPad reports whether the direction button is currently held.
	DPad(b Button) bool

	// AnyButton reports whether any button at all is held, the direction
	// buttons included.
	AnyButton() bool
}

// Gamepad polls a Pad once per frame. Analog readings are shaped through
// the calibration and merged with the digital direction buttons, keeping
// whichever has the larger magnitude per axis.
type Gamepad struct {
	events *Events
	pad    Pad
	calib  *curve.Calibration

	// last observed AnyButton state, for rising edge detection
	anyHeld bool

	// whether the pad was connected at the previous poll
	connected bool
}

// NewGamepad is the preferred method of initialisation for the Gamepad
// type. No connection event is needed before polling begins: the first Poll
// does real work, so a device attached before the program started is picked
// up immediately.
func NewGamepad(pad Pad, calib *curve.Calibration, events *Events) *Gamepad {
	return &Gamepad{
		events: events,
		pad:    pad,
		calib:  calib,
	}
}

// digital folds a pair of direction buttons into -1, 0 or +1. opposite
// buttons cancel
func (g *Gamepad) digital(neg Button, pos Button) float64 {
	var d float64
	if g.pad.DPad(neg) {
		d--
	}
	if g.pad.DPad(pos) {
		d++
	}
	return d
}

// the analog reading wins a tie, so a full stick deflection is never
// overridden by the d-pad
func merge(analog float64, digital float64) float64 {
	if math.Abs(digital) > math.Abs(analog) {
		return digital
	}
	return analog
}

// Poll reads the pad once. While a device is connected a movement vector is
// published on every poll, the zero vector included, so arbitration sees
// gamepad idleness as promptly as it sees gamepad activity. A disconnected
// pad publishes nothing.
//
// Disconnection resets the button edge state: a button still held when the
// device reconnects registers as a fresh press.
func (g *Gamepad) Poll() {
	if g.pad == nil || !g.pad.Connected() {
		if g.connected {
			g.connected = false
			g.anyHeld = false
		}
		return
	}
	g.connected = true

	v := Vector{
		X: merge(g.calib.Shape(g.pad.Axis(0)), g.digital(ButtonLeft, ButtonRight)),
		Y: merge(g.calib.Shape(g.pad.Axis(1)), g.digital(ButtonUp, ButtonDown)),
	}
	g.events.Move(v, SourceGamepad)

	any := g.pad.AnyButton()
	if any && !g.anyHeld {
		g.events.Trigger()
	}
	g.anyHeld = any
}
