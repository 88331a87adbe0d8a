package input_test

import (
	"testing"

	"github.com/skerrett/yoke/input"
	"github.com/skerrett/yoke/input/curve"
	"github.com/skerrett/yoke/test"
)

func TestTriggerDeregistration(t *testing.T) {
	ev := input.NewEvents()

	count := 0
	remove := ev.OnTrigger(func() {
		count++
	})

	ev.Trigger()
	test.ExpectEquality(t, count, 1)

	remove()
	ev.Trigger()
	test.ExpectEquality(t, count, 1)
}

func TestTriggerIndependentOfArbitration(t *testing.T) {
	// the full wiring: keyboard and gamepad captures on one bus with an
	// arbiter watching. trigger pulses are delivered regardless of which
	// source owns movement
	ev := input.NewEvents()
	r := record(ev)
	a := input.NewArbiter(ev)
	k := input.NewKeyboard(ev)

	p := newFakePad()
	g := input.NewGamepad(p, curve.NewCalibration(), ev)

	// the keyboard takes ownership of movement
	k.KeyDown("w")
	test.ExpectEquality(t, a.Active(), input.SourceKeyboard)

	// a gamepad button still pulses the trigger
	p.any = true
	g.Poll()
	test.ExpectEquality(t, r.triggers, 1)
	test.ExpectEquality(t, a.Active(), input.SourceKeyboard)

	// and so does an activation key while the gamepad owns movement
	k.Blur()
	p.any = false
	p.axes[1] = 0.8
	g.Poll()
	test.ExpectEquality(t, a.Active(), input.SourceGamepad)

	k.KeyDown(" ")
	test.ExpectEquality(t, r.triggers, 2)
}
