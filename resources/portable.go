package resources

import (
	"os"
	"path/filepath"
)

// the marker file that indicates a portable installation, and the resource
// directory used when the marker is present. both are relative to the
// directory containing the program binary
const (
	portableMarker = "portable.txt"
	portableDir    = "Yoke_UserData"
)

var portablePath string

// checkPortable looks for the portable marker next to the binary. as a side
// effect of finding it, portablePath is set
func checkPortable() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	d := filepath.Dir(exe)
	if _, err := os.Stat(filepath.Join(d, portableMarker)); err != nil {
		return false
	}

	portablePath = filepath.Join(d, portableDir)
	return true
}
