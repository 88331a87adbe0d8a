package game_test

import (
	"math"
	"testing"
	"time"

	"github.com/skerrett/yoke/game"
	"github.com/skerrett/yoke/input"
	"github.com/skerrett/yoke/test"
)

const step = time.Second / 60

func TestRoverCapabilities(t *testing.T) {
	r := game.NewRover(640, 360)
	test.ExpectImplements[game.Game](t, r)
	test.ExpectImplements[game.Activator](t, r)
	test.ExpectImplements[game.Overlay](t, r)
}

func TestRoverAccelerates(t *testing.T) {
	r := game.NewRover(640, 360)
	x := r.X

	for range 30 {
		r.Step(step, input.Vector{X: 1})
	}
	test.ExpectEquality(t, r.X > x, true)
	test.ExpectEquality(t, r.VX > 0, true)
	test.ExpectEquality(t, r.VY, 0)
}

func TestRoverCoastsToRest(t *testing.T) {
	r := game.NewRover(640, 360)

	for range 30 {
		r.Step(step, input.Vector{Y: -1})
	}
	test.ExpectEquality(t, r.VY < 0, true)

	// with no input the damping bleeds the speed away
	for range 300 {
		r.Step(step, input.Vector{})
	}
	test.ExpectEquality(t, math.Abs(r.VY) < 1, true)
}

func TestRoverSpeedSaturates(t *testing.T) {
	r := game.NewRover(100000, 100000)

	// drive long enough to saturate then measure two consecutive steps.
	// at the speed cap the per-step displacement is constant
	for range 600 {
		r.Step(step, input.Vector{X: 1})
	}
	x1 := r.X
	r.Step(step, input.Vector{X: 1})
	d1 := r.X - x1
	x2 := r.X
	r.Step(step, input.Vector{X: 1})
	d2 := r.X - x2

	test.ExpectEquality(t, d1 > 0, true)
	test.ExpectApproximate(t, d2, d1, 0.001)
}

func TestRoverStopsAtWall(t *testing.T) {
	r := game.NewRover(640, 360)

	for range 600 {
		r.Step(step, input.Vector{X: -1})
	}
	test.ExpectEquality(t, r.X, r.Radius)
	test.ExpectEquality(t, r.VX, 0)

	// released from the wall it stays put
	r.Step(step, input.Vector{})
	test.ExpectEquality(t, r.X, r.Radius)
}

func TestRoverDash(t *testing.T) {
	r := game.NewRover(100000, 100000)

	// a gentle drift rightward establishes the heading
	for range 10 {
		r.Step(step, input.Vector{X: 0.2})
	}
	before := math.Hypot(r.VX, r.VY)

	r.Activate()
	after := math.Hypot(r.VX, r.VY)
	test.ExpectEquality(t, after > before, true)
	test.ExpectEquality(t, r.VX > 0, true)

	// the boost decays back under the normal speed limit
	for range 120 {
		r.Step(step, input.Vector{})
	}
	test.ExpectEquality(t, math.Hypot(r.VX, r.VY) < after, true)
}

func TestRoverDashFromRest(t *testing.T) {
	r := game.NewRover(640, 360)

	// a rover that has never moved dashes along its default heading
	r.Activate()
	test.ExpectEquality(t, r.VX > 0, true)
	test.ExpectEquality(t, r.VY, 0)
}

func TestRoverDeterminism(t *testing.T) {
	a := game.NewRover(640, 360)
	b := game.NewRover(640, 360)

	moves := []input.Vector{{X: 1}, {X: 1, Y: -1}, {}, {Y: 0.5}, {X: -0.3}}
	for i, m := range moves {
		dt := time.Duration(i+1) * 5 * time.Millisecond
		a.Step(dt, m)
		b.Step(dt, m)
	}
	test.ExpectEquality(t, a.X, b.X)
	test.ExpectEquality(t, a.Y, b.Y)
	test.ExpectEquality(t, a.VX, b.VX)
	test.ExpectEquality(t, a.VY, b.VY)
}
