// Command nesinfo prints an iNES ROM's header fields without running it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nesgo/nesgo/cart"
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: nesinfo <rom-file>")
		os.Exit(1)
	}
	romPath := flag.Arg(0)

	f, err := os.Open(romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nesinfo: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	c, err := cart.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nesinfo: %s: %v\n", romPath, err)
		if cart.IsUnsupportedMapper(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	h := c.Header()
	fmt.Printf("ROM file:    %s\n", romPath)
	fmt.Printf("Header:      %s\n", h)
	fmt.Printf("PRG-ROM:     %d bytes\n", h.PRGSize())
	fmt.Printf("CHR-ROM:     %d bytes\n", h.CHRSize())
	fmt.Printf("Mapper:      %d\n", h.MapperNumber())
	fmt.Printf("Mirroring:   %s\n", c.Mirroring())
	fmt.Printf("Trainer:     %v\n", h.HasTrainer())
	fmt.Printf("Battery RAM: %v\n", h.HasBatteryRAM())
}
