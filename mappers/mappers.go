// Package mappers implements cartridge mappers, keyed by the iNES
// mapper number. Only mapper 0 (NROM) is implemented; the registry
// exists so additional mappers can be added without touching cart.
package mappers

import (
	"fmt"

	"github.com/nesgo/nesgo/ines"
)

// Mapper decodes the CPU- and PPU-side addresses a cartridge exposes
// for PRG-ROM and CHR-ROM/RAM access.
type Mapper interface {
	// PrgRead reads a byte from the $8000-$FFFF CPU address window.
	PrgRead(addr uint16) uint8
	// PrgWrite handles a CPU write into the $8000-$FFFF window.
	// NROM cartridges have no PRG registers, so this is a no-op.
	PrgWrite(addr uint16, val uint8)
	// ChrRead reads a byte from the $0000-$1FFF PPU pattern-table window.
	ChrRead(addr uint16) uint8
	// ChrWrite handles a PPU-side write into the pattern-table window.
	ChrWrite(addr uint16, val uint8)
	// Mirroring returns the nametable mirroring mode for this cartridge.
	Mirroring() ines.Mirroring
}

// Factory builds a Mapper from the cartridge's PRG/CHR bytes and
// parsed header.
type Factory func(prg, chr []byte, h *ines.Header) (Mapper, error)

var registry = map[uint8]Factory{}

// Register adds a mapper factory under id. Panics on duplicate
// registration, since that can only indicate a programming error at
// init time, not a runtime condition to recover from.
func Register(id uint8, f Factory) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mappers: id %d already registered", id))
	}
	registry[id] = f
}

// New builds the Mapper registered for h.MapperNumber(), or an error
// if no mapper is registered for that id.
func New(prg, chr []byte, h *ines.Header) (Mapper, error) {
	id := h.MapperNumber()
	f, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("mappers: unsupported mapper %d", id)
	}
	return f(prg, chr, h)
}

func init() {
	Register(0, newNROM)
}
