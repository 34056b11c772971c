// Package cart loads iNES ROM images and owns the immutable PRG/CHR
// byte buffers plus header metadata, delegating address decoding to a
// mappers.Mapper.
package cart

import (
	"errors"
	"fmt"
	"io"

	"github.com/nesgo/nesgo/ines"
	"github.com/nesgo/nesgo/mappers"
)

// Kind classifies why a ROM image failed to load, per spec.md §7.
type Kind int

const (
	BadRomHeader Kind = iota
	BadRomSize
	UnsupportedMapper
)

func (k Kind) String() string {
	switch k {
	case BadRomHeader:
		return "BadRomHeader"
	case BadRomSize:
		return "BadRomSize"
	case UnsupportedMapper:
		return "UnsupportedMapper"
	default:
		return "Unknown"
	}
}

// RomError wraps a load failure with its Kind so callers can branch
// on category without parsing the error text.
type RomError struct {
	Kind Kind
	Err  error
}

func (e *RomError) Error() string {
	return fmt.Sprintf("cart: %s: %v", e.Kind, e.Err)
}

func (e *RomError) Unwrap() error {
	return e.Err
}

const trainerSize = 512

// Cart owns the ROM's PRG/CHR bytes and header, and routes CPU/PPU
// address-space accesses through its mapper.
type Cart struct {
	header *ines.Header
	mapper mappers.Mapper
}

// Load parses an iNES image from r: 16-byte header, optional 512-byte
// trainer, PRG bytes, then CHR bytes.
func Load(r io.Reader) (*Cart, error) {
	hbytes := make([]byte, 16)
	if _, err := io.ReadFull(r, hbytes); err != nil {
		return nil, &RomError{BadRomHeader, err}
	}

	h, err := ines.Parse(hbytes)
	if err != nil {
		return nil, &RomError{BadRomHeader, err}
	}

	if h.HasTrainer() {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, &RomError{BadRomSize, fmt.Errorf("trainer: %w", err)}
		}
	}

	prg := make([]byte, h.PRGSize())
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, &RomError{BadRomSize, fmt.Errorf("PRG-ROM: %w", err)}
	}

	chr := make([]byte, h.CHRSize())
	if h.CHRSize() > 0 {
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, &RomError{BadRomSize, fmt.Errorf("CHR-ROM: %w", err)}
		}
	}

	m, err := mappers.New(prg, chr, h)
	if err != nil {
		return nil, &RomError{UnsupportedMapper, err}
	}

	return &Cart{header: h, mapper: m}, nil
}

// PrgRead maps a CPU address in $8000-$FFFF to PRG-ROM.
func (c *Cart) PrgRead(addr uint16) uint8 {
	return c.mapper.PrgRead(addr)
}

// PrgWrite handles a CPU write targeting $8000-$FFFF. NROM ignores it.
func (c *Cart) PrgWrite(addr uint16, val uint8) {
	c.mapper.PrgWrite(addr, val)
}

// ChrRead maps a PPU address in $0000-$1FFF to CHR-ROM.
func (c *Cart) ChrRead(addr uint16) uint8 {
	return c.mapper.ChrRead(addr)
}

// ChrWrite handles a PPU-side write into the pattern-table window.
func (c *Cart) ChrWrite(addr uint16, val uint8) {
	c.mapper.ChrWrite(addr, val)
}

// Mirroring returns the cartridge's nametable mirroring mode.
func (c *Cart) Mirroring() ines.Mirroring {
	return c.mapper.Mirroring()
}

// Header returns the parsed iNES header, mostly useful for
// introspection tools (see cmd/nesinfo).
func (c *Cart) Header() *ines.Header {
	return c.header
}

// IsUnsupportedMapper reports whether err (from Load) was specifically
// an unsupported-mapper failure.
func IsUnsupportedMapper(err error) bool {
	var re *RomError
	return errors.As(err, &re) && re.Kind == UnsupportedMapper
}
