package curve

import (
	"fmt"
	"sync/atomic"
)

// Default values for the Calibration type.
const (
	DefaultDeadZone = 0.25
	DefaultResponse = 1.6
)

// Limits applied when setting Calibration values. Values outside the limits
// are clamped, never rejected.
const (
	MaxDeadZone = 0.9
	MinResponse = 0.5
)

// Calibration is the pair of shaping parameters in live use. Values can be
// written and read from different goroutines: a diagnostic terminal can
// adjust them while the frame loop reads them every poll.
type Calibration struct {
	deadZone atomic.Value // float64
	response atomic.Value // float64
}

// NewCalibration is the preferred method of initialisation for the
// Calibration type.
func NewCalibration() *Calibration {
	c := &Calibration{}
	c.Reset()
	return c
}

// Reset restores both parameters to their default values.
func (c *Calibration) Reset() {
	c.deadZone.Store(float64(DefaultDeadZone))
	c.response.Store(float64(DefaultResponse))
}

// SetDeadZone clamps the value to the range [0, MaxDeadZone] and stores it.
func (c *Calibration) SetDeadZone(v float64) {
	if v < 0 {
		v = 0
	} else if v > MaxDeadZone {
		v = MaxDeadZone
	}
	c.deadZone.Store(v)
}

// DeadZone returns the current dead zone value.
func (c *Calibration) DeadZone() float64 {
	return c.deadZone.Load().(float64)
}

// SetResponse clamps the value to no less than MinResponse and stores it.
func (c *Calibration) SetResponse(v float64) {
	if v < MinResponse {
		v = MinResponse
	}
	c.response.Store(v)
}

// Response returns the current response curve exponent.
func (c *Calibration) Response() float64 {
	return c.response.Load().(float64)
}

// Shape applies the current parameter pair to a raw axis reading.
func (c *Calibration) Shape(raw float64) float64 {
	return Shape(raw, c.DeadZone(), c.Response())
}

func (c *Calibration) String() string {
	return fmt.Sprintf("dead zone %.2f, response %.2f", c.DeadZone(), c.Response())
}
