package curve_test

import (
	"testing"

	"github.com/skerrett/yoke/input/curve"
	"github.com/skerrett/yoke/test"
)

func TestShapeDeadZone(t *testing.T) {
	// readings inside the dead zone, the boundary included, return zero
	for _, raw := range []float64{0, 0.1, 0.2, 0.25, -0.25, -0.2, -0.01} {
		test.ExpectEquality(t, curve.Shape(raw, 0.25, 1.6), 0, raw)
	}

	// a dead zone of zero only absorbs a reading of exactly zero
	test.ExpectEquality(t, curve.Shape(0, 0, 1.6), 0)
	test.ExpectInequality(t, curve.Shape(0.01, 0, 1.6), 0)
}

func TestShapeWorkedExample(t *testing.T) {
	// half deflection with the default parameters: (0.25/0.75)^1.6
	test.ExpectApproximate(t, curve.Shape(0.5, 0.25, 1.6), 0.17243, 0.001)
	test.ExpectApproximate(t, curve.Shape(-0.5, 0.25, 1.6), -0.17243, 0.001)
}

func TestShapeContinuity(t *testing.T) {
	// a reading a hair outside the dead zone must produce a result near
	// zero. a naive curve without renormalization would jump
	v := curve.Shape(0.2501, 0.25, 1.6)
	test.ExpectEquality(t, v > 0, true)
	test.ExpectEquality(t, v < 1e-4, true)
}

func TestShapeMonotonic(t *testing.T) {
	prev := 0.0
	for raw := 0.26; raw <= 1.0; raw += 0.01 {
		v := curve.Shape(raw, 0.25, 1.6)
		test.ExpectEquality(t, v > prev, true, raw)
		prev = v
	}
}

func TestShapeFullDeflection(t *testing.T) {
	test.ExpectEquality(t, curve.Shape(1, 0.25, 1.6), 1)
	test.ExpectEquality(t, curve.Shape(-1, 0.25, 1.6), -1)
	test.ExpectEquality(t, curve.Shape(1, 0.9, 3.0), 1)
}

func TestShapeSoftResponse(t *testing.T) {
	// an exponent below one expands the low end rather than compressing it
	v := curve.Shape(0.5, 0.25, 0.5)
	test.ExpectEquality(t, v > 0.25/0.75, true)
	test.ExpectEquality(t, v < 1, true)
}
