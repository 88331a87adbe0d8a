package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// JoinPath joins the supplied path elements and prepends the OS/build
// specific base path, if it is not already present.
//
// The function creates all folders necessary to reach the end of the path.
// It does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	// the base path is either the portable path or the path returned by
	// resourcePath(). which resourcePath() depends on whether the program
	// was compiled as a release binary or a development binary
	var b string

	if checkPortable() {
		b = portablePath
	} else {
		var err error
		b, err = resourcePath()
		if err != nil {
			return "", err
		}
	}

	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	// nothing more to do if the path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
