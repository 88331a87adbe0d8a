package input

import (
	"fmt"
	"math"
)

// Epsilon is the magnitude below which a vector is considered idle. Analog
// sticks rarely report exactly zero at rest; anything at or below this
// threshold carries no arbitration weight.
const Epsilon = 1e-4

// Vector is a 2D movement reading. X is positive rightward and Y is positive
// downward, matching screen space. Components are normally in the range
// [-1, 1] and digital sources only ever produce -1, 0 or +1.
type Vector struct {
	X float64
	Y float64
}

// Significant reports whether the vector magnitude exceeds Epsilon.
func (v Vector) Significant() bool {
	return math.Hypot(v.X, v.Y) > Epsilon
}

func (v Vector) String() string {
	return fmt.Sprintf("(%+.3f, %+.3f)", v.X, v.Y)
}

// Source identifies the device a movement reading originated from.
type Source int

// SourcePointer is the zero value: the pointer owns movement whenever no
// other device holds a claim.
const (
	SourcePointer Source = iota
	SourceKeyboard
	SourceGamepad
	numSources
)

func (s Source) String() string {
	switch s {
	case SourcePointer:
		return "pointer"
	case SourceKeyboard:
		return "keyboard"
	case SourceGamepad:
		return "gamepad"
	}
	return "unknown"
}
