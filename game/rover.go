package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/skerrett/yoke/input"
)

// movement tuning. units are pixels and seconds
const (
	accel     = 900.0
	damping   = 3.0
	maxSpeed  = 260.0
	dashSpeed = 520.0
	dashTime  = 0.18
)

// Rover is the demonstration game: a dot driven around an arena by the
// fused movement vector. The trigger dashes it along its current heading.
type Rover struct {
	X      float64
	Y      float64
	VX     float64
	VY     float64
	Radius float64

	arenaW float64
	arenaH float64

	// the last significant direction, used as the dash heading when the
	// rover is coasting or still
	facing input.Vector

	// seconds of dash boost remaining
	dash float64
}

// NewRover is the preferred method of initialisation for the Rover type.
// The rover starts at rest in the centre of the arena, facing right.
func NewRover(arenaW float64, arenaH float64) *Rover {
	return &Rover{
		X:      arenaW / 2,
		Y:      arenaH / 2,
		Radius: 10,
		arenaW: arenaW,
		arenaH: arenaH,
		facing: input.Vector{X: 1},
	}
}

// Step implements the Game interface. All motion derives from dt so the
// rover is deterministic under the scheduler's clamped deltas.
func (r *Rover) Step(dt time.Duration, dir input.Vector) {
	s := dt.Seconds()

	if dir.Significant() {
		r.facing = dir
	}

	r.VX += dir.X * accel * s
	r.VY += dir.Y * accel * s

	// damping that is stable at any frame rate
	d := 1 / (1 + damping*s)
	r.VX *= d
	r.VY *= d

	limit := maxSpeed
	if r.dash > 0 {
		r.dash -= s
		limit = dashSpeed
	}
	if v := math.Hypot(r.VX, r.VY); v > limit {
		r.VX *= limit / v
		r.VY *= limit / v
	}

	r.X += r.VX * s
	r.Y += r.VY * s

	// the walls stop the rover rather than bouncing it
	if r.X < r.Radius {
		r.X = r.Radius
		r.VX = math.Max(r.VX, 0)
	} else if r.X > r.arenaW-r.Radius {
		r.X = r.arenaW - r.Radius
		r.VX = math.Min(r.VX, 0)
	}
	if r.Y < r.Radius {
		r.Y = r.Radius
		r.VY = math.Max(r.VY, 0)
	} else if r.Y > r.arenaH-r.Radius {
		r.Y = r.arenaH - r.Radius
		r.VY = math.Min(r.VY, 0)
	}
}

// Activate implements the Activator capability: a dash impulse along the
// current heading.
func (r *Rover) Activate() {
	m := math.Hypot(r.facing.X, r.facing.Y)
	if m == 0 {
		return
	}
	r.VX = r.facing.X / m * dashSpeed
	r.VY = r.facing.Y / m * dashSpeed
	r.dash = dashTime
}

// DrawOverlay implements the Overlay capability: a ring around the rover
// that fades over the life of a dash.
func (r *Rover) DrawOverlay(screen *ebiten.Image) {
	if r.dash <= 0 {
		return
	}
	a := uint8(255 * r.dash / dashTime)
	clr := color.RGBA{R: a, G: a, B: a, A: a}
	vector.StrokeCircle(screen, float32(r.X), float32(r.Y), float32(r.Radius)+6, 2, clr, true)
}
