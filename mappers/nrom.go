package mappers

import (
	"fmt"
	"log"

	"github.com/nesgo/nesgo/ines"
)

// ErrNoChrROM is returned by newNROM when the cartridge declares 0
// CHR banks. spec.md scopes mapper 0 to CHR-ROM only; CHR-RAM boards
// are out of scope.
var ErrNoChrROM = fmt.Errorf("mappers: NROM requires CHR-ROM (CHR-RAM unsupported)")

const prgBankSize = 16384

// nrom implements mapper 0: 16KB or 32KB PRG-ROM, fixed 8KB CHR-ROM,
// no bank switching. A 16KB image is mirrored into both halves of
// $8000-$FFFF (NROM-128); a 32KB image maps directly (NROM-256).
type nrom struct {
	prg       []byte
	chr       []byte
	mirroring ines.Mirroring
	mirror16  bool // true for NROM-128 (16KB PRG, mirrored)
}

func newNROM(prg, chr []byte, h *ines.Header) (Mapper, error) {
	if len(chr) == 0 {
		return nil, ErrNoChrROM
	}
	return &nrom{
		prg:       prg,
		chr:       chr,
		mirroring: h.Mirroring(),
		mirror16:  len(prg) == prgBankSize,
	}, nil
}

func (m *nrom) PrgRead(addr uint16) uint8 {
	off := addr - 0x8000
	if m.mirror16 {
		off %= prgBankSize
	}
	return m.prg[off]
}

func (m *nrom) PrgWrite(addr uint16, val uint8) {
	log.Printf("mappers: NROM ignoring PRG write at %#04x", addr)
}

func (m *nrom) ChrRead(addr uint16) uint8 {
	return m.chr[addr]
}

func (m *nrom) ChrWrite(addr uint16, val uint8) {
	// NROM CHR is ROM; writes are dropped silently. Some NROM
	// boards do ship CHR-RAM, but spec.md scopes that out (see
	// ErrNoChrROM).
}

func (m *nrom) Mirroring() ines.Mirroring {
	return m.mirroring
}
