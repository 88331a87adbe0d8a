package monitor

import (
	"strings"
	"testing"

	"github.com/skerrett/yoke/input/curve"
	"github.com/skerrett/yoke/test"
	"github.com/skerrett/yoke/ui"
)

func testModel() *model {
	return newModel(&monitor{
		ui:    ui.NewUI(),
		calib: curve.NewCalibration(),
	})
}

// the most recent line of scrollback, without any styling applied in an
// interactive terminal
func lastOutput(m *model) string {
	if len(m.output) == 0 {
		return ""
	}
	return m.output[len(m.output)-1]
}

func TestCalibrationCommand(t *testing.T) {
	m := testModel()

	quit := m.execute("CALIBRATION DEADZONE 0.3")
	test.ExpectEquality(t, quit, false)
	test.ExpectEquality(t, m.mon.calib.DeadZone(), 0.3)

	// the short alias works and out-of-range values are clamped
	m.execute("CALIB DEADZONE 2")
	test.ExpectEquality(t, m.mon.calib.DeadZone(), curve.MaxDeadZone)

	m.execute("CALIBRATION RESPONSE 2.0")
	test.ExpectEquality(t, m.mon.calib.Response(), 2.0)
	m.execute("CALIBRATION RESPONSE 0.1")
	test.ExpectEquality(t, m.mon.calib.Response(), curve.MinResponse)

	m.execute("CALIBRATION UNKNOWN 1")
	test.ExpectEquality(t,
		strings.Contains(lastOutput(m), "unrecognised calibration parameter"), true)
}

func TestShapeCommand(t *testing.T) {
	m := testModel()

	// half deflection at the default calibration: (0.25/0.75)^1.6
	m.execute("SHAPE 0.5")
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "+0.1724"), true)

	m.execute("SHAPE 0.1")
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "+0.0000"), true)

	m.execute("SHAPE nope")
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "cannot use SHAPE"), true)
}

func TestPauseResumeCommands(t *testing.T) {
	m := testModel()

	m.execute("PAUSE")
	select {
	case cmd := <-m.mon.ui.Commands:
		test.DemandEquality(t, len(cmd), 1)
		test.ExpectEquality(t, cmd[0], "PAUSE")
	default:
		t.Fatal("PAUSE was not forwarded to the front-end")
	}

	m.execute("RESUME")
	select {
	case cmd := <-m.mon.ui.Commands:
		test.DemandEquality(t, len(cmd), 1)
		test.ExpectEquality(t, cmd[0], "RESUME")
	default:
		t.Fatal("RESUME was not forwarded to the front-end")
	}
}

func TestQuitAndUnrecognised(t *testing.T) {
	m := testModel()

	test.ExpectEquality(t, m.execute("QUIT"), true)
	test.ExpectEquality(t, m.execute(""), false)

	m.execute("FROBNICATE")
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "unrecognised command"), true)
}

func TestStatusCommand(t *testing.T) {
	m := testModel()

	// no readout has arrived yet
	m.execute("STATUS")
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "no readout"), true)

	m.latest = ui.Readout{
		ActorX:      320,
		ActorY:      210,
		Running:     true,
		Calibration: m.mon.calib.String(),
	}
	m.haveReadout = true

	before := len(m.output)
	m.execute("STATUS")
	test.ExpectEquality(t, len(m.output) > before, true)
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "dead zone"), true)
}
