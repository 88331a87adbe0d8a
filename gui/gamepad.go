package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/skerrett/yoke/input"
	"github.com/skerrett/yoke/logger"
)

// pad implements input.Pad over the ebiten gamepad functions. It binds the
// first slot reporting a connected device and stays with it until that
// device disconnects. Additional devices are ignored while one is bound.
type pad struct {
	id       ebiten.GamepadID
	attached bool

	// whether ebiten recognizes the device as having the standard layout.
	// devices without it fall back to raw axis and button numbers
	standard bool

	scratch []ebiten.GamepadID
}

func newPad() *pad {
	return &pad{}
}

// refresh updates the slot binding. Called once per frame, before Poll.
// The scan when unattached also covers a device that was connected before
// the program started: the first frame binds it without waiting for any
// connect event.
func (p *pad) refresh() {
	if p.attached {
		if inpututil.IsGamepadJustDisconnected(p.id) {
			p.attached = false
			logger.Logf(logger.Allow, "gamepad", "disconnected (slot %d)", p.id)
		}
		return
	}

	p.scratch = ebiten.AppendGamepadIDs(p.scratch[:0])
	if len(p.scratch) == 0 {
		return
	}

	p.id = p.scratch[0]
	p.attached = true
	p.standard = ebiten.IsStandardGamepadLayoutAvailable(p.id)
	logger.Logf(logger.Allow, "gamepad", "connected: %s (slot %d)",
		ebiten.GamepadName(p.id), p.id)
}

// Connected implements the input.Pad interface.
func (p *pad) Connected() bool {
	return p.attached
}

// Axis implements the input.Pad interface. The left stick for standard
// layout devices, the first two raw axes otherwise.
func (p *pad) Axis(n int) float64 {
	if !p.attached {
		return 0
	}
	if p.standard {
		switch n {
		case 0:
			return ebiten.StandardGamepadAxisValue(p.id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		case 1:
			return ebiten.StandardGamepadAxisValue(p.id, ebiten.StandardGamepadAxisLeftStickVertical)
		}
		return 0
	}
	if n >= ebiten.GamepadAxisCount(p.id) {
		return 0
	}
	return ebiten.GamepadAxisValue(p.id, n)
}

// raw button numbers for the d-pad on non-standard devices, matching the
// common controller mapping
var rawDPad = map[input.Button]ebiten.GamepadButton{
	input.ButtonUp:    ebiten.GamepadButton11,
	input.ButtonRight: ebiten.GamepadButton12,
	input.ButtonDown:  ebiten.GamepadButton13,
	input.ButtonLeft:  ebiten.GamepadButton14,
}

var standardDPad = map[input.Button]ebiten.StandardGamepadButton{
	input.ButtonUp:    ebiten.StandardGamepadButtonLeftTop,
	input.ButtonRight: ebiten.StandardGamepadButtonLeftRight,
	input.ButtonDown:  ebiten.StandardGamepadButtonLeftBottom,
	input.ButtonLeft:  ebiten.StandardGamepadButtonLeftLeft,
}

// DPad implements the input.Pad interface.
func (p *pad) DPad(b input.Button) bool {
	if !p.attached {
		return false
	}
	if p.standard {
		return ebiten.IsStandardGamepadButtonPressed(p.id, standardDPad[b])
	}
	return ebiten.IsGamepadButtonPressed(p.id, rawDPad[b])
}

// AnyButton implements the input.Pad interface.
func (p *pad) AnyButton() bool {
	if !p.attached {
		return false
	}
	if p.standard {
		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			if ebiten.IsStandardGamepadButtonPressed(p.id, b) {
				return true
			}
		}
		return false
	}
	for i := range ebiten.GamepadButtonCount(p.id) {
		if ebiten.IsGamepadButtonPressed(p.id, ebiten.GamepadButton(i)) {
			return true
		}
	}
	return false
}
