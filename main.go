package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/skerrett/yoke/gui"
	"github.com/skerrett/yoke/input/curve"
	"github.com/skerrett/yoke/logger"
	"github.com/skerrett/yoke/monitor"
	"github.com/skerrett/yoke/ui"
	"github.com/skerrett/yoke/version"
)

func main() {
	var endGui chan bool
	var endMonitor chan bool
	var resultGui chan error
	var resultMonitor chan error

	// buffered channels. this means we don't have to worry about the gui
	// closing before the monitor and vice versa
	endGui = make(chan bool, 1)
	endMonitor = make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and monitor will end
	resultGui = make(chan error, 1)
	resultMonitor = make(chan error, 1)

	// the monitor owns flag parsing but headless running means never
	// starting the gui at all, so that one flag is checked here too
	headless := slices.Contains(os.Args[1:], "-headless")

	u := ui.NewUI()
	calib := curve.NewCalibration()

	logger.Log(logger.Allow, "yoke", version.Title())

	if !headless {
		go func() {
			resultGui <- gui.Launch(endGui, u, calib)
			endMonitor <- true
		}()
	}

	go func() {
		resultMonitor <- monitor.Launch(endMonitor, u, calib, os.Args[1:])
		endGui <- true
	}()

	var fail bool

	if !headless {
		if err := <-resultGui; err != nil {
			fmt.Printf("*** %s\n", err)
			fail = true
		}
	}
	if err := <-resultMonitor; err != nil {
		fmt.Printf("*** %s\n", err)
		fail = true
	}

	if fail {
		os.Exit(1)
	}
}
