// Package gui is the ebiten front-end. It owns the platform: the window,
// the frame cadence, the real keyboard, mouse and gamepad devices. Each
// frame it feeds device activity into the input pipeline and ticks the
// update loop with the fused result.
package gui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/skerrett/yoke/game"
	"github.com/skerrett/yoke/input"
	"github.com/skerrett/yoke/input/curve"
	"github.com/skerrett/yoke/logger"
	"github.com/skerrett/yoke/loop"
	"github.com/skerrett/yoke/ui"
	"github.com/skerrett/yoke/version"
)

// logical resolution of the scene. the window scales it but the arena and
// every coordinate in the pipeline works in these units
const (
	sceneWidth  = 640
	sceneHeight = 420
)

// the number of frames the trigger indicator stays visible
const pulseFrames = 12

var (
	arenaColor = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	roverColor = color.RGBA{R: 240, G: 200, B: 80, A: 255}
	pulseColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

type gui struct {
	ui     *ui.UI
	endGui chan bool

	// the assembled pipeline. everything below is owned by the ebiten
	// update goroutine
	events   *input.Events
	keyboard *input.Keyboard
	pad      *pad
	gamepad  *input.Gamepad
	arbiter  *input.Arbiter
	calib    *curve.Calibration
	loop     *loop.Loop

	// the hosted game and the optional capabilities it turned out to have
	hosted  game.Game
	overlay game.Overlay

	// the rover is the hosted game. the concrete reference is kept for
	// drawing and for the monitor readout
	rover *game.Rover

	actions actions
	audio   *blip

	// pointer steering state. see pointer() in input.go
	pointerHeld bool

	// focus state at the previous frame, for blur detection
	focused bool

	// countdown for the trigger indicator
	pulse int

	// recent rover positions for the motion trail, oldest first
	trail [][2]float64

	geom windowGeometry
}

func (g *gui) Update() error {
	select {
	case <-g.endGui:
		g.audio.close()
		return ebiten.Termination
	default:
	}

	// drain commands from the monitor
	for {
		select {
		case cmd := <-g.ui.Commands:
			g.command(cmd)
			continue
		default:
		}
		break
	}

	if !g.actions.started {
		g.actions.initialise()
	}
	if g.shellActions() {
		g.audio.close()
		return ebiten.Termination
	}

	// device activity for this frame
	g.inputKeyboard()
	g.pad.refresh()
	g.gamepad.Poll()
	g.pointer()

	g.loop.Tick(time.Now())

	if g.pulse > 0 {
		g.pulse--
	}

	g.pushReadout()

	return nil
}

func (g *gui) command(cmd []string) {
	if len(cmd) == 0 {
		return
	}
	switch cmd[0] {
	case "PAUSE":
		g.loop.SetActive(false)
	case "RESUME":
		g.loop.SetActive(true)
	default:
		logger.Logf(logger.Allow, "gui", "unrecognised command: %s", cmd[0])
	}
}

// the update callback given to the loop. dt is always clamped by the loop
// before it arrives here
func (g *gui) step(dt time.Duration) {
	g.hosted.Step(dt, g.arbiter.Vector())

	g.trail = append(g.trail, [2]float64{g.rover.X, g.rover.Y})
	if len(g.trail) > 30 {
		g.trail = g.trail[1:]
	}
}

func (g *gui) pushReadout() {
	r := ui.Readout{
		Active:      g.arbiter.Active(),
		Fused:       g.arbiter.Vector(),
		Keyboard:    g.arbiter.Last(input.SourceKeyboard),
		Gamepad:     g.arbiter.Last(input.SourceGamepad),
		Pointer:     g.arbiter.Last(input.SourcePointer),
		Running:     g.loop.Active(),
		ActorX:      g.rover.X,
		ActorY:      g.rover.Y,
		Calibration: g.calib.String(),
	}

	// the monitor may be busy. a dropped snapshot doesn't matter because
	// another follows next frame
	select {
	case g.ui.Readout <- r:
	default:
	}
}

func (g *gui) Layout(width, height int) (int, int) {
	return sceneWidth, sceneHeight
}

// Launch assembles the pipeline and runs the ebiten front-end. It blocks
// until the window closes, the quit action fires, or endGui is signalled.
func Launch(endGui chan bool, u *ui.UI, calib *curve.Calibration) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetWindowSize(sceneWidth, sceneHeight)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := &gui{
		ui:      u,
		endGui:  endGui,
		calib:   calib,
		audio:   &blip{},
		focused: true,
	}

	g.events = input.NewEvents()
	g.keyboard = input.NewKeyboard(g.events)
	g.pad = newPad()
	g.gamepad = input.NewGamepad(g.pad, calib, g.events)
	g.arbiter = input.NewArbiter(g.events)
	defer g.arbiter.Close()

	g.rover = game.NewRover(sceneWidth, sceneHeight)
	g.hosted = g.rover
	g.overlay, _ = g.hosted.(game.Overlay)

	// the trigger channel fans out to the audio blip, the on-screen pulse,
	// and the hosted game if it wants activation
	activator, _ := g.hosted.(game.Activator)
	removeTrigger := g.events.OnTrigger(func() {
		g.pulse = pulseFrames
		g.audio.play()
		if activator != nil {
			activator.Activate()
		}
	})
	defer removeTrigger()

	g.loop = loop.New(g.step)
	g.loop.SetActive(true)

	// close is idempotent so the quit paths inside Update are free to call
	// it as well
	defer g.audio.close()

	g.actions.system.Init(actionSystemConfig())

	var err error
	g.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		err := onWindowClose(g.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
		}
	}()

	return ebiten.RunGame(g)
}

func (g *gui) Draw(screen *ebiten.Image) {
	// arena border
	vector.StrokeRect(screen, 1, 1, sceneWidth-2, sceneHeight-2, 1, arenaColor, false)

	// motion trail, fading towards the oldest position
	for i, p := range g.trail {
		a := uint8(255 * (i + 1) / (len(g.trail) + 1))
		c := color.RGBA{R: a, G: a, B: a, A: a}
		vector.DrawFilledCircle(screen, float32(p[0]), float32(p[1]), 2, c, true)
	}

	// the rover itself, with a highlight ring while it owns a trigger pulse
	vector.DrawFilledCircle(screen, float32(g.rover.X), float32(g.rover.Y),
		float32(g.rover.Radius), roverColor, true)
	if g.pulse > 0 {
		r := g.rover.Radius + float64(pulseFrames-g.pulse)
		vector.StrokeCircle(screen, float32(g.rover.X), float32(g.rover.Y),
			float32(r), 2, pulseColor, true)
	}

	if g.overlay != nil {
		g.overlay.DrawOverlay(screen)
	}

	g.drawHUD(screen)

	g.geom.x, g.geom.y = ebiten.WindowPosition()
	g.geom.w, g.geom.h = ebiten.WindowSize()
}

func (g *gui) drawHUD(screen *ebiten.Image) {
	state := "running"
	if !g.loop.Active() {
		state = "paused"
	}
	ebitenutil.DebugPrintAt(screen,
		g.arbiter.Active().String()+" "+g.arbiter.Vector().String()+
			"  "+g.calib.String()+"  "+state,
		4, sceneHeight-18)
}
