package input

import "strings"

// recognized key names, in their normalized lower case form. arrow keys and
// the WASD alternates are interchangeable
const (
	keyUp    = "arrowup"
	keyDown  = "arrowdown"
	keyLeft  = "arrowleft"
	keyRight = "arrowright"
	altUp    = "w"
	altDown  = "s"
	altLeft  = "a"
	altRight = "d"
	keySpace = " "
	keyEnter = "enter"
)

func isMovementKey(name string) bool {
	switch name {
	case keyUp, keyDown, keyLeft, keyRight, altUp, altDown, altLeft, altRight:
		return true
	}
	return false
}

func isActivateKey(name string) bool {
	return name == keySpace || name == keyEnter
}

// Keyboard converts key transitions into digital movement vectors and
// trigger pulses. It is edge driven: the front-end reports key downs and key
// ups as they happen and the capture maintains the set of held keys.
type Keyboard struct {
	events *Events
	held   map[string]bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type.
func NewKeyboard(events *Events) *Keyboard {
	return &Keyboard{
		events: events,
		held:   make(map[string]bool),
	}
}

// vector derives the digital movement vector from the held set. a direction
// is active if either of its keys is held and opposite directions cancel
func (k *Keyboard) vector() Vector {
	var v Vector
	if k.held[keyUp] || k.held[altUp] {
		v.Y--
	}
	if k.held[keyDown] || k.held[altDown] {
		v.Y++
	}
	if k.held[keyLeft] || k.held[altLeft] {
		v.X--
	}
	if k.held[keyRight] || k.held[altRight] {
		v.X++
	}
	return v
}

// KeyDown processes a key press. Key names are matched case-insensitively.
// The return value reports whether the key is one the capture recognizes,
// letting the front-end suppress any default handling for it and pass every
// other key through untouched.
//
// Movement keys recompute and re-publish the vector on every call, repeats
// included. Activation keys fire the trigger on the first press only: the
// key must be released before it can fire again.
func (k *Keyboard) KeyDown(name string) bool {
	name = strings.ToLower(name)

	if isActivateKey(name) {
		if !k.held[name] {
			k.held[name] = true
			k.events.Trigger()
		}
		return true
	}

	if !isMovementKey(name) {
		return false
	}

	k.held[name] = true
	k.events.Move(k.vector(), SourceKeyboard)
	return true
}

// KeyUp processes a key release. The return value has the same meaning as
// for KeyDown.
func (k *Keyboard) KeyUp(name string) bool {
	name = strings.ToLower(name)

	if isActivateKey(name) {
		delete(k.held, name)
		return true
	}

	if !isMovementKey(name) {
		return false
	}

	delete(k.held, name)
	k.events.Move(k.vector(), SourceKeyboard)
	return true
}

// Blur empties the held set and publishes the zero vector, surrendering any
// arbitration claim the keyboard holds. The front-end calls it on focus
// loss: a key released while the application cannot see key events would
// otherwise be held forever.
func (k *Keyboard) Blur() {
	clear(k.held)
	k.events.Move(Vector{}, SourceKeyboard)
}
