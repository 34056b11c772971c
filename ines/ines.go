// Package ines implements parsing of the iNES v1 ROM header format.
// https://www.nesdev.org/wiki/INES
package ines

import (
	"errors"
	"fmt"
)

// ErrBadHeader is returned when the leading 4 bytes of a ROM image
// aren't the iNES magic ("NES" followed by 0x1A).
var ErrBadHeader = errors.New("ines: bad header magic")

// ErrShortHeader is returned when fewer than 16 bytes were supplied.
var ErrShortHeader = errors.New("ines: header too short")

// Mirroring identifies the nametable mirroring mode selected by the
// cartridge (or forced to four-screen by the header).
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorFourScreen:
		return "four-screen"
	default:
		return "unknown"
	}
}

// flags6 bits
const (
	flags6Mirroring   = 1 << 0
	flags6BatteryRAM  = 1 << 1
	flags6Trainer     = 1 << 2
	flags6FourScreen  = 1 << 3
	flags6MapperLoMsk = 0xF0
)

// flags7 bits
const (
	flags7MapperHiMsk = 0xF0
	flags7NES2Msk     = 0x0C
	flags7NES2Val     = 0x08
)

// Header holds the parsed fields of a 16-byte iNES header.
type Header struct {
	PRGBanks uint8 // number of 16KB PRG-ROM banks
	CHRBanks uint8 // number of 8KB CHR-ROM banks (0 = CHR-RAM)
	Flags6   uint8
	Flags7   uint8
	Flags8   uint8
	Flags9   uint8
	Flags10  uint8
	unused   [4]byte
}

// Parse reads the 16-byte iNES header from hbytes.
func Parse(hbytes []byte) (*Header, error) {
	if len(hbytes) < 16 {
		return nil, ErrShortHeader
	}
	if string(hbytes[0:4]) != "NES\x1a" {
		return nil, fmt.Errorf("%w: got %q", ErrBadHeader, hbytes[0:4])
	}

	h := &Header{
		PRGBanks: hbytes[4],
		CHRBanks: hbytes[5],
		Flags6:   hbytes[6],
		Flags7:   hbytes[7],
		Flags8:   hbytes[8],
		Flags9:   hbytes[9],
		Flags10:  hbytes[10],
	}
	copy(h.unused[:], hbytes[12:16])

	return h, nil
}

func (h *Header) String() string {
	return fmt.Sprintf("prg(%dx16KB) chr(%dx8KB) mapper(%d) mirroring(%s) trainer(%v) battery(%v)",
		h.PRGBanks, h.CHRBanks, h.MapperNumber(), h.Mirroring(), h.HasTrainer(), h.HasBatteryRAM())
}

// Mirroring returns the nametable mirroring mode implied by flags6,
// forced to four-screen when the ignore-mirroring bit is set.
func (h *Header) Mirroring() Mirroring {
	if h.Flags6&flags6FourScreen != 0 {
		return MirrorFourScreen
	}
	if h.Flags6&flags6Mirroring != 0 {
		return MirrorVertical
	}
	return MirrorHorizontal
}

// HasTrainer reports whether a 512-byte trainer precedes PRG data.
func (h *Header) HasTrainer() bool {
	return h.Flags6&flags6Trainer != 0
}

// HasBatteryRAM reports whether the cartridge has battery-backed PRG RAM.
func (h *Header) HasBatteryRAM() bool {
	return h.Flags6&flags6BatteryRAM != 0
}

// isNES2 reports whether flags7 marks this as a NES 2.0 header.
func (h *Header) isNES2() bool {
	return h.Flags7&flags7NES2Msk == flags7NES2Val
}

// ignoreHighNibble mirrors the well-known iNES quirk: some old ROM
// management tools stamped bytes 7-15 with text like "DiskDude!",
// which corrupts the high mapper nibble in flags7 unless we detect
// and ignore it for non-NES2.0 headers.
func (h *Header) ignoreHighNibble() bool {
	if h.isNES2() {
		return false
	}
	for _, b := range h.unused {
		if b != 0 {
			return true
		}
	}
	return false
}

// MapperNumber reconstructs the mapper id from the low nibble of
// flags6 and (unless suppressed by the DiskDude quirk) the high
// nibble of flags7.
func (h *Header) MapperNumber() uint8 {
	lo := (h.Flags6 & flags6MapperLoMsk) >> 4
	if h.ignoreHighNibble() {
		return lo
	}
	return (h.Flags7 & flags7MapperHiMsk) | lo
}

// PRGSize returns the PRG-ROM size in bytes.
func (h *Header) PRGSize() int {
	return int(h.PRGBanks) * 16384
}

// CHRSize returns the CHR-ROM size in bytes (0 means CHR-RAM).
func (h *Header) CHRSize() int {
	return int(h.CHRBanks) * 8192
}
