//go:build !release
// +build !release

package resources

// development builds keep resources in the working directory, close to hand
const baseDir = ".yoke"

func resourcePath() (string, error) {
	return baseDir, nil
}
