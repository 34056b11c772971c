package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nesgo/nesgo/bus"
)

// keys maps controller bit position (A, B, Select, Start, Up, Down,
// Left, Right) to an ebiten key, same layout as the teacher's
// console/controller.go.
var keys = []struct {
	key  ebiten.Key
	mask uint8
}{
	{ebiten.KeyA, bus.ButtonA},
	{ebiten.KeyB, bus.ButtonB},
	{ebiten.KeySpace, bus.ButtonSelect},
	{ebiten.KeyEnter, bus.ButtonStart},
	{ebiten.KeyUp, bus.ButtonUp},
	{ebiten.KeyDown, bus.ButtonDown},
	{ebiten.KeyLeft, bus.ButtonLeft},
	{ebiten.KeyRight, bus.ButtonRight},
}

// pollButtons samples the live ebiten key state into a single
// controller-port button byte.
func pollButtons() uint8 {
	var b uint8
	for _, k := range keys {
		if ebiten.IsKeyPressed(k.key) {
			b |= k.mask
		}
	}
	return b
}
