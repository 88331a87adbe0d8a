package loop_test

import (
	"testing"
	"time"

	"github.com/skerrett/yoke/loop"
	"github.com/skerrett/yoke/test"
)

func TestLoopInactive(t *testing.T) {
	count := 0
	l := loop.New(func(time.Duration) {
		count++
	})

	// a new loop is inactive and ignores ticks
	test.ExpectEquality(t, l.Active(), false)
	l.Tick(time.Now())
	test.ExpectEquality(t, count, 0)
}

func TestLoopFirstDelta(t *testing.T) {
	var dt time.Duration
	l := loop.New(func(d time.Duration) {
		dt = d
	})

	// with no previous tick to measure from the first delta is nominal
	l.SetActive(true)
	l.Tick(time.Now())
	test.ExpectEquality(t, dt, loop.NominalStep)
}

func TestLoopMeasuredDelta(t *testing.T) {
	var dts []time.Duration
	l := loop.New(func(d time.Duration) {
		dts = append(dts, d)
	})

	l.SetActive(true)
	now := time.Now()
	l.Tick(now)
	l.Tick(now.Add(10 * time.Millisecond))
	l.Tick(now.Add(25 * time.Millisecond))

	test.DemandEquality(t, len(dts), 3)
	test.ExpectEquality(t, dts[1], 10*time.Millisecond)
	test.ExpectEquality(t, dts[2], 15*time.Millisecond)
}

func TestLoopClampsStall(t *testing.T) {
	var dt time.Duration
	l := loop.New(func(d time.Duration) {
		dt = d
	})

	l.SetActive(true)
	now := time.Now()
	l.Tick(now)

	// a half second stall produces one clamped step, not a leap
	l.Tick(now.Add(500 * time.Millisecond))
	test.ExpectEquality(t, dt, loop.MaxStep)
}

func TestLoopClockAnomaly(t *testing.T) {
	var dt time.Duration
	l := loop.New(func(d time.Duration) {
		dt = d
	})

	l.SetActive(true)
	now := time.Now()
	l.Tick(now)

	// a repeated clock reading falls back to the nominal step rather than
	// passing zero
	l.Tick(now)
	test.ExpectEquality(t, dt, loop.NominalStep)

	// as does a rewound clock
	l.Tick(now.Add(-time.Second))
	test.ExpectEquality(t, dt, loop.NominalStep)
}

func TestLoopReactivation(t *testing.T) {
	var dts []time.Duration
	l := loop.New(func(d time.Duration) {
		dts = append(dts, d)
	})

	l.SetActive(true)
	now := time.Now()
	l.Tick(now)
	l.Tick(now.Add(10 * time.Millisecond))

	// deactivation stops callbacks entirely
	l.SetActive(false)
	l.Tick(now.Add(20 * time.Millisecond))
	test.ExpectEquality(t, len(dts), 2)

	// reactivation starts timing afresh: the delta is nominal however
	// long the pause lasted
	l.SetActive(true)
	l.Tick(now.Add(time.Hour))
	test.DemandEquality(t, len(dts), 3)
	test.ExpectEquality(t, dts[2], loop.NominalStep)
}

func TestLoopActivationIdempotent(t *testing.T) {
	var dt time.Duration
	l := loop.New(func(d time.Duration) {
		dt = d
	})

	l.SetActive(true)
	now := time.Now()
	l.Tick(now)

	// repeating the current state must not reset the stored timestamp
	l.SetActive(true)
	l.Tick(now.Add(10 * time.Millisecond))
	test.ExpectEquality(t, dt, 10*time.Millisecond)
}
