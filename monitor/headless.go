package monitor

import (
	"math"
	"time"

	"github.com/skerrett/yoke/game"
	"github.com/skerrett/yoke/input"
	"github.com/skerrett/yoke/input/curve"
	"github.com/skerrett/yoke/loop"
	"github.com/skerrett/yoke/ui"
)

// arena dimensions for the headless rover, matching the front-end's scene
const (
	arenaWidth  = 640
	arenaHeight = 420
)

// autopilot tuning: sweep speed of the synthetic stick, and period and
// width of the button tap
const (
	sweepRate    = 0.8
	buttonPeriod = 3.0
	buttonHold   = 0.2
)

// autopilot implements input.Pad as a synthetic device: the stick sweeps a
// slow figure eight and a button taps periodically. It exists so that the
// whole pipeline has something to chew on when there is no display and no
// real device.
type autopilot struct {
	t float64
}

func (a *autopilot) advance(dt time.Duration) {
	a.t += dt.Seconds()
}

// Connected implements the input.Pad interface.
func (a *autopilot) Connected() bool {
	return true
}

// Axis implements the input.Pad interface.
func (a *autopilot) Axis(n int) float64 {
	switch n {
	case 0:
		return math.Sin(a.t * sweepRate)
	case 1:
		return math.Sin(2 * a.t * sweepRate)
	}
	return 0
}

// DPad implements the input.Pad interface. The autopilot has no d-pad.
func (a *autopilot) DPad(input.Button) bool {
	return false
}

// AnyButton implements the input.Pad interface.
func (a *autopilot) AnyButton() bool {
	return math.Mod(a.t, buttonPeriod) < buttonHold
}

// headless is the pipeline without a front-end: the same captures, arbiter,
// game and loop the GUI assembles, paced by a wall-clock ticker and fed by
// the autopilot. Everything below the ticker is owned by the tick
// goroutine; the monitor reaches in with Nudge.
type headless struct {
	ui    *ui.UI
	calib *curve.Calibration

	events  *input.Events
	auto    *autopilot
	gamepad *input.Gamepad
	arbiter *input.Arbiter
	rover   *game.Rover

	loop   *loop.Loop
	ticker *loop.Ticker
}

func startHeadless(u *ui.UI, calib *curve.Calibration, fps float64) *headless {
	h := &headless{
		ui:    u,
		calib: calib,
		auto:  &autopilot{},
	}

	h.events = input.NewEvents()
	h.gamepad = input.NewGamepad(h.auto, calib, h.events)
	h.arbiter = input.NewArbiter(h.events)

	h.rover = game.NewRover(arenaWidth, arenaHeight)
	h.events.OnTrigger(h.rover.Activate)

	h.loop = loop.New(h.step)
	h.loop.SetActive(true)

	h.ticker = loop.NewTicker(h.loop, fps)
	h.ticker.Start()

	return h
}

func (h *headless) step(dt time.Duration) {
	h.auto.advance(dt)
	h.gamepad.Poll()
	h.rover.Step(dt, h.arbiter.Vector())
	h.readout()
}

func (h *headless) readout() {
	r := ui.Readout{
		Active:      h.arbiter.Active(),
		Fused:       h.arbiter.Vector(),
		Keyboard:    h.arbiter.Last(input.SourceKeyboard),
		Gamepad:     h.arbiter.Last(input.SourceGamepad),
		Pointer:     h.arbiter.Last(input.SourcePointer),
		Running:     h.loop.Active(),
		ActorX:      h.rover.X,
		ActorY:      h.rover.Y,
		Calibration: h.calib.String(),
	}
	select {
	case h.ui.Readout <- r:
	default:
	}
}

// setRunning toggles the loop from the monitor goroutine. The flag must be
// flipped on the tick goroutine, so the change goes through a nudge. A
// paused loop produces no readouts: the nudge pushes one showing the new
// state.
func (h *headless) setRunning(running bool) {
	h.ticker.Nudge(func() {
		h.loop.SetActive(running)
		h.readout()
	})
}

func (h *headless) stop() {
	h.ticker.Stop()
	h.arbiter.Close()
}
