package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	einput "github.com/quasilyte/ebitengine-input"
)

// shell-level actions. these are about running the application, not about
// steering the rover, so they bypass the capture pipeline and live in a
// single rebindable keymap instead
const (
	ActionQuit einput.Action = iota
	ActionPause
	ActionFullscreen
	ActionDeadZoneDown
	ActionDeadZoneUp
	ActionResponseDown
	ActionResponseUp
)

// calibration nudge applied per key press
const (
	deadZoneStep = 0.05
	responseStep = 0.1
)

type actions struct {
	system  einput.System
	handler *einput.Handler
	started bool
}

func actionSystemConfig() einput.SystemConfig {
	return einput.SystemConfig{
		DevicesEnabled: einput.AnyDevice,
	}
}

func (a *actions) initialise() {
	keymap := einput.Keymap{
		ActionQuit:         {einput.KeyEscape},
		ActionPause:        {einput.KeyP, einput.KeyGamepadStart},
		ActionFullscreen:   {einput.KeyF},
		ActionDeadZoneDown: {einput.KeyQ},
		ActionDeadZoneUp:   {einput.KeyE},
		ActionResponseDown: {einput.KeyZ},
		ActionResponseUp:   {einput.KeyC},
	}
	a.handler = a.system.NewHandler(0, keymap)
	a.started = true
}

// shellActions runs the keymap for the frame. The return value reports
// whether a quit was requested.
func (g *gui) shellActions() bool {
	g.actions.system.Update()

	h := g.actions.handler

	if h.ActionIsJustPressed(ActionQuit) {
		return true
	}
	if h.ActionIsJustPressed(ActionPause) {
		g.loop.SetActive(!g.loop.Active())
	}
	if h.ActionIsJustPressed(ActionFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if h.ActionIsJustPressed(ActionDeadZoneDown) {
		g.calib.SetDeadZone(g.calib.DeadZone() - deadZoneStep)
	}
	if h.ActionIsJustPressed(ActionDeadZoneUp) {
		g.calib.SetDeadZone(g.calib.DeadZone() + deadZoneStep)
	}
	if h.ActionIsJustPressed(ActionResponseDown) {
		g.calib.SetResponse(g.calib.Response() - responseStep)
	}
	if h.ActionIsJustPressed(ActionResponseUp) {
		g.calib.SetResponse(g.calib.Response() + responseStep)
	}

	return false
}
