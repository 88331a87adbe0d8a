// The browser build: the graphical front-end alone, with no terminal
// monitor attached. Readouts go nowhere and the command channel stays
// silent; everything else behaves as in the desktop build.
package main

import (
	"fmt"
	"os"

	"github.com/skerrett/yoke/gui"
	"github.com/skerrett/yoke/input/curve"
	"github.com/skerrett/yoke/logger"
	"github.com/skerrett/yoke/ui"
	"github.com/skerrett/yoke/version"
)

func main() {
	// logger messages will be viewable in the javascript console
	logger.SetEcho(os.Stderr, false)
	logger.Log(logger.Allow, "yoke", version.Title())

	endGui := make(chan bool, 1)
	u := ui.NewUI()
	calib := curve.NewCalibration()

	err := gui.Launch(endGui, u, calib)
	if err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
