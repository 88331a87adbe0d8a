//go:build wasm

package gui

// there is no window geometry to keep in a browser

type windowGeometry struct {
	x, y int
	w, h int
}

func onWindowOpen() (windowGeometry, error) {
	return windowGeometry{}, nil
}

func onWindowClose(g windowGeometry) error {
	return nil
}
