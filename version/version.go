// Package version reports which build of the application is running. A
// release number is stamped in by the build system; everything else comes
// from the vcs information the Go toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Yoke"

// set with the linker's -X flag by a release build. empty for every other
// kind of build
var number string

// the vcs revision hash. suffixed with "+dirty" if the working tree had
// uncommitted changes at build time
var revision string

// the version string reported to the user. "unreleased" for a build from a
// checkout without a stamped number and "local" when there is no vcs
// information at all, as when running with "go run ."
var version string

// Version returns the version string, the revision string, and whether this
// build carries a stamped release number. For release builds the revision
// information should be used sparingly.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Title returns a string suitable for a window title: the application name
// with the version number, or with the revision for unnumbered builds.
func Title() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s (%s)", ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number != "" {
		version = number
	} else if vcs {
		version = "unreleased"
	} else {
		version = "local"
	}
}
