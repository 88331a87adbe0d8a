package gui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/skerrett/yoke/input"
)

// keyName translates an ebiten key into the name the keyboard capture
// recognizes. An empty string means the key is of no interest to the
// pipeline: shell actions have their own keymap and everything else is
// ignored.
func keyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowUp:
		return "ArrowUp"
	case ebiten.KeyArrowDown:
		return "ArrowDown"
	case ebiten.KeyArrowLeft:
		return "ArrowLeft"
	case ebiten.KeyArrowRight:
		return "ArrowRight"
	case ebiten.KeyW:
		return "w"
	case ebiten.KeyS:
		return "s"
	case ebiten.KeyA:
		return "a"
	case ebiten.KeyD:
		return "d"
	case ebiten.KeySpace:
		return " "
	case ebiten.KeyEnter:
		return "Enter"
	}
	return ""
}

func (g *gui) inputKeyboard() {
	// a focus loss releases every held key at once. without this a key
	// released while another window has focus would be held forever
	focused := ebiten.IsFocused()
	if !focused {
		if g.focused {
			g.keyboard.Blur()
			g.focused = false
		}
		return
	}
	g.focused = true

	var pressed []ebiten.Key
	var released []ebiten.Key
	pressed = inpututil.AppendJustPressedKeys(pressed)
	released = inpututil.AppendJustReleasedKeys(released)

	for _, k := range released {
		if name := keyName(k); name != "" {
			g.keyboard.KeyUp(name)
		}
	}

	for _, k := range pressed {
		if name := keyName(k); name != "" {
			g.keyboard.KeyDown(name)
		}
	}
}

// the distance from the rover at which pointer steering reaches full speed.
// inside the radius the commanded speed falls off linearly, preventing
// orbiting around a nearby cursor
const steerRadius = 48.0

// pointer converts a held mouse button or touch into a steering vector
// toward the cursor and feeds it through the same bus as the captures. on
// release a single zero vector surrenders the pointer's arbitration claim
func (g *gui) pointer() {
	var cx, cy int
	var held bool

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		cx, cy = ebiten.CursorPosition()
		held = true
	} else if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		cx, cy = ebiten.TouchPosition(ids[0])
		held = true
	}

	if !held {
		if g.pointerHeld {
			g.pointerHeld = false
			g.events.Move(input.Vector{}, input.SourcePointer)
		}
		return
	}
	g.pointerHeld = true

	dx := float64(cx) - g.rover.X
	dy := float64(cy) - g.rover.Y
	m := math.Hypot(dx, dy)

	var v input.Vector
	if m > 0 {
		scale := math.Min(m/steerRadius, 1) / m
		v = input.Vector{X: dx * scale, Y: dy * scale}
	}
	g.events.Move(v, input.SourcePointer)
}
