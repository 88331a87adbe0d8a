package monitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skerrett/yoke/input"
	"github.com/skerrett/yoke/logger"
)

var helpText = []string{
	"CALIBRATION [DEADZONE <v> | RESPONSE <v>]   show or adjust the axis shaping",
	"SHAPE <raw>                                 run a raw value through the current curve",
	"STATUS                                      latest pipeline readout",
	"PAUSE / RESUME                              stop and start the update loop",
	"LOG [n]                                     tail of the central log",
	"QUIT                                        shut everything down",
}

// execute runs one command line. The return value reports whether a quit
// was requested.
func (m *model) execute(line string) bool {
	cmd := strings.Fields(line)
	if len(cmd) == 0 {
		return false
	}

	switch strings.ToUpper(cmd[0]) {
	case "HELP":
		for _, l := range helpText {
			m.print(m.styles.result, l)
		}

	case "CALIBRATION", "CALIB":
		m.calibration(cmd[1:])

	case "SHAPE":
		if len(cmd) != 2 {
			m.print(m.styles.err, "SHAPE requires a raw axis value")
			break
		}
		raw, err := strconv.ParseFloat(cmd[1], 64)
		if err != nil {
			m.print(m.styles.err, fmt.Sprintf("cannot use SHAPE %s", cmd[1]))
			break
		}
		m.print(m.styles.result, fmt.Sprintf("%+.4f -> %+.4f", raw, m.mon.calib.Shape(raw)))

	case "STATUS":
		m.status()

	case "PAUSE":
		m.mon.pause()
		m.print(m.styles.result, "update loop paused")

	case "RESUME":
		m.mon.resume()
		m.print(m.styles.result, "update loop resumed")

	case "LOG":
		n := 10
		if len(cmd) == 2 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil {
				m.print(m.styles.err, fmt.Sprintf("cannot use LOG %s", cmd[1]))
				break
			}
		}
		var b strings.Builder
		logger.Tail(&b, n)
		if b.Len() == 0 {
			m.print(m.styles.log, "log is empty")
		} else {
			m.print(m.styles.log, b.String())
		}

	case "QUIT":
		return true

	default:
		m.print(m.styles.err, fmt.Sprintf("unrecognised command: %s", cmd[0]))
	}

	return false
}

func (m *model) calibration(args []string) {
	if len(args) == 0 {
		m.print(m.styles.result, m.mon.calib.String())
		return
	}

	if len(args) != 2 {
		m.print(m.styles.err, "CALIBRATION requires a parameter name and a value")
		return
	}

	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		m.print(m.styles.err, fmt.Sprintf("cannot use CALIBRATION %s %s", args[0], args[1]))
		return
	}

	// out-of-range values are clamped by the setters, never rejected
	switch strings.ToUpper(args[0]) {
	case "DEADZONE":
		m.mon.calib.SetDeadZone(v)
	case "RESPONSE":
		m.mon.calib.SetResponse(v)
	default:
		m.print(m.styles.err, fmt.Sprintf("unrecognised calibration parameter: %s", args[0]))
		return
	}

	m.print(m.styles.result, m.mon.calib.String())
}

func (m *model) status() {
	if !m.haveReadout {
		m.print(m.styles.err, "no readout received yet")
		return
	}
	r := m.latest

	state := "running"
	if !r.Running {
		state = "paused"
	}

	m.print(m.styles.status, fmt.Sprintf("active source: %s", r.Active))
	m.print(m.styles.status, fmt.Sprintf("fused vector: %s", r.Fused))
	m.print(m.styles.status, fmt.Sprintf("  %s %s", input.SourceKeyboard, r.Keyboard))
	m.print(m.styles.status, fmt.Sprintf("  %s %s", input.SourceGamepad, r.Gamepad))
	m.print(m.styles.status, fmt.Sprintf("  %s %s", input.SourcePointer, r.Pointer))
	m.print(m.styles.status, fmt.Sprintf("actor: (%.1f, %.1f)", r.ActorX, r.ActorY))
	m.print(m.styles.status, fmt.Sprintf("loop: %s", state))
	m.print(m.styles.status, r.Calibration)
}
