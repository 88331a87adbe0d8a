// Package curve shapes raw analog axis readings. A dead zone absorbs stick
// drift and a power curve gives finer control near the centre of the stick's
// travel.
package curve

import "math"

// Shape applies a dead zone and a response curve to a raw axis reading.
//
// Readings with a magnitude of deadZone or less return zero. The remaining
// travel is renormalized to the full [0, 1] range before the response
// exponent is applied, so there is no jump in output as the reading leaves
// the dead zone. Outside the dead zone the output increases strictly with
// the magnitude of the reading. Sign is preserved and a full deflection of
// +/-1.0 always returns +/-1.0.
//
// The function is pure. For readings tied to live calibration values use the
// Shape method of the Calibration type.
func Shape(raw float64, deadZone float64, response float64) float64 {
	mag := math.Abs(raw)
	if mag <= deadZone {
		return 0
	}

	s := math.Pow((mag-deadZone)/(1-deadZone), response)

	if raw < 0 {
		return -s
	}
	return s
}
