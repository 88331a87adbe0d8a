// Package ui is the plumbing between the two halves of the application:
// the graphical front-end running the input pipeline, and the terminal
// monitor observing and steering it. The two halves run in their own
// goroutines and these channels are how they talk.
package ui

import (
	"github.com/skerrett/yoke/input"
)

// Readout is a snapshot of the pipeline, pushed from the frame goroutine to
// the monitor once per frame. Sends are non-blocking and stale snapshots
// are dropped: whatever the monitor reads is recent, not complete.
type Readout struct {
	Active   input.Source
	Fused    input.Vector
	Keyboard input.Vector
	Gamepad  input.Vector
	Pointer  input.Vector

	// whether the update loop is currently running
	Running bool

	// position of the hosted game's actor
	ActorX float64
	ActorY float64

	// the calibration pair as reported by its Stringer
	Calibration string
}

type UI struct {
	Commands chan []string
	Readout  chan Readout
}

func NewUI() *UI {
	return &UI{
		Commands: make(chan []string, 1),
		Readout:  make(chan Readout, 1),
	}
}
