// Command nesgo plays an NES ROM with an ebiten-driven window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nesgo/nesgo/nes"
	"github.com/nesgo/nesgo/ppu"
)

var romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")

// game implements ebiten.Game. Unlike the teacher's console.Bus, which
// drives emulation from a background goroutine and has Update do
// nothing, game steps exactly one NES frame per ebiten Update call:
// the NES's ~60Hz frame rate and ebiten's default tick rate already
// match, so there's no need for a second goroutine or the
// synchronization it would require.
type game struct {
	system *nes.NES
	conv   *frameConverter
}

func newGame(romPath string) (*game, error) {
	f, err := os.Open(romPath)
	if err != nil {
		return nil, fmt.Errorf("opening ROM: %w", err)
	}
	defer f.Close()

	system, err := nes.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}
	system.Reset()

	return &game{
		system: system,
		conv:   newFrameConverter(ppu.ScreenWidth, ppu.ScreenHeight),
	}, nil
}

func (g *game) Update() error {
	g.system.SetButtons(0, pollButtons())
	g.system.StepFrame()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	pix := g.conv.convert(g.system.Frame(), ppu.ScreenWidth, ppu.ScreenHeight)
	screen.WritePixels(pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.ScreenWidth, ppu.ScreenHeight
}

func main() {
	flag.Parse()
	if *romFile == "" {
		log.Fatal("nesgo: -nes_rom is required")
	}

	g, err := newGame(*romFile)
	if err != nil {
		log.Fatalf("nesgo: %v", err)
	}

	ebiten.SetWindowSize(ppu.ScreenWidth*2, ppu.ScreenHeight*2)
	ebiten.SetWindowTitle("nesgo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
