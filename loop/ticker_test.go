package loop_test

import (
	"testing"
	"time"

	"github.com/skerrett/yoke/loop"
	"github.com/skerrett/yoke/test"
)

func TestTickerDelivers(t *testing.T) {
	tick := make(chan time.Duration, 64)
	l := loop.New(func(d time.Duration) {
		tick <- d
	})
	l.SetActive(true)

	tk := loop.NewTicker(l, 200)
	tk.Start()
	defer tk.Stop()

	select {
	case d := <-tick:
		test.ExpectEquality(t, d > 0, true)
		test.ExpectEquality(t, d <= loop.MaxStep, true)
	case <-time.After(time.Second):
		t.Fatal("no update within a second of starting the ticker")
	}
}

func TestTickerNudge(t *testing.T) {
	l := loop.New(func(time.Duration) {})
	l.SetActive(true)

	tk := loop.NewTicker(l, 200)
	tk.Start()

	// the nudged function runs on the tick goroutine so it may touch the
	// loop directly
	done := make(chan bool)
	tk.Nudge(func() {
		l.SetActive(false)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("nudged function did not run within a second")
	}
	test.ExpectEquality(t, l.Active(), false)

	tk.Stop()

	// a stopped ticker never runs a nudged function but Nudge must not
	// block either
	tk.Nudge(func() {
		t.Error("nudged function ran after Stop")
	})
}

func TestTickerStopIsFinal(t *testing.T) {
	tick := make(chan bool, 64)
	l := loop.New(func(time.Duration) {
		select {
		case tick <- true:
		default:
		}
	})
	l.SetActive(true)

	tk := loop.NewTicker(l, 200)
	tk.Start()

	// wait for the ticker to prove it is running
	select {
	case <-tick:
	case <-time.After(time.Second):
		t.Fatal("no update within a second of starting the ticker")
	}

	// when Stop returns the tick goroutine has exited. drain whatever was
	// sent before the stop completed and nothing new can arrive
	tk.Stop()
	for len(tick) > 0 {
		<-tick
	}
	select {
	case <-tick:
		t.Fatal("update arrived after Stop returned")
	case <-time.After(50 * time.Millisecond):
	}
}
