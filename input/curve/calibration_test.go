package curve_test

import (
	"testing"

	"github.com/skerrett/yoke/input/curve"
	"github.com/skerrett/yoke/test"
)

func TestCalibrationDefaults(t *testing.T) {
	c := curve.NewCalibration()
	test.ExpectEquality(t, c.DeadZone(), curve.DefaultDeadZone)
	test.ExpectEquality(t, c.Response(), curve.DefaultResponse)
}

func TestCalibrationClamping(t *testing.T) {
	c := curve.NewCalibration()

	c.SetDeadZone(-1)
	test.ExpectEquality(t, c.DeadZone(), 0)
	c.SetDeadZone(2)
	test.ExpectEquality(t, c.DeadZone(), curve.MaxDeadZone)
	c.SetDeadZone(0.3)
	test.ExpectEquality(t, c.DeadZone(), 0.3)

	c.SetResponse(0)
	test.ExpectEquality(t, c.Response(), curve.MinResponse)
	c.SetResponse(3.2)
	test.ExpectEquality(t, c.Response(), 3.2)
}

func TestCalibrationReset(t *testing.T) {
	c := curve.NewCalibration()
	c.SetDeadZone(0.5)
	c.SetResponse(2.5)
	c.Reset()
	test.ExpectEquality(t, c.DeadZone(), curve.DefaultDeadZone)
	test.ExpectEquality(t, c.Response(), curve.DefaultResponse)
}

func TestCalibrationShape(t *testing.T) {
	c := curve.NewCalibration()

	// the method form tracks the live values
	test.ExpectApproximate(t, c.Shape(0.5), 0.169, 0.01)

	c.SetDeadZone(0.5)
	test.ExpectEquality(t, c.Shape(0.5), 0)
}
