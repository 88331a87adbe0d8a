// Package game defines what the shell requires of a hosted game and
// provides the demonstration implementation.
//
// The Game interface is the one required capability. Everything else is
// optional: the shell discovers the optional capabilities with type
// assertions and quietly does without when an assertion fails.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/skerrett/yoke/input"
)

// Game is the capability required of anything the shell hosts. Step is
// called once per scheduler tick with the clamped frame delta and the fused
// movement vector. Implementations must derive all motion from dt: two runs
// fed the same deltas and vectors end in the same state.
type Game interface {
	Step(dt time.Duration, dir input.Vector)
}

// Activator is an optional capability. When a hosted game implements it the
// shell wires the trigger channel to Activate.
type Activator interface {
	Activate()
}

// Overlay is an optional capability for games that draw on top of the
// shell's scene.
type Overlay interface {
	DrawOverlay(screen *ebiten.Image)
}
