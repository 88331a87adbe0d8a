package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/skerrett/yoke/test"
)

func TestKeyName(t *testing.T) {
	// every movement key maps to a name the keyboard capture recognizes,
	// arrows and the WASD alternates alike
	pairs := []struct {
		key  ebiten.Key
		name string
	}{
		{ebiten.KeyArrowUp, "ArrowUp"},
		{ebiten.KeyArrowDown, "ArrowDown"},
		{ebiten.KeyArrowLeft, "ArrowLeft"},
		{ebiten.KeyArrowRight, "ArrowRight"},
		{ebiten.KeyW, "w"},
		{ebiten.KeyS, "s"},
		{ebiten.KeyA, "a"},
		{ebiten.KeyD, "d"},
		{ebiten.KeySpace, " "},
		{ebiten.KeyEnter, "Enter"},
	}
	for _, p := range pairs {
		test.ExpectEquality(t, keyName(p.key), p.name)
	}

	// keys belonging to the shell action keymap, or to nothing at all, are
	// of no interest to the capture pipeline
	for _, k := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyTab} {
		test.ExpectEquality(t, keyName(k), "")
	}
}

func TestWindowGeometryValid(t *testing.T) {
	test.ExpectEquality(t, windowGeometry{x: 10, y: 10, w: 640, h: 420}.valid(), true)
	test.ExpectEquality(t, windowGeometry{}.valid(), false)
	test.ExpectEquality(t, windowGeometry{x: -1, y: 10, w: 640, h: 420}.valid(), false)
}
