package ppu

// loopy stores one of the PPU's two "Loopy" scroll registers (v and
// t) and exposes its bitfields:
// yyy NN YYYYY XXXXX
// ||| || ||||| +++++-- coarse X scroll
// ||| || +++++-------- coarse Y scroll
// ||| ++-------------- nametable select
// +++----------------- fine Y scroll
// https://www.nesdev.org/wiki/PPU_scrolling
type loopy struct {
	data uint16 // only 15 bits used
}

func (l loopy) coarseX() uint16 {
	return l.data & 0x001F
}

func (l loopy) withCoarseX(n uint16) loopy {
	return loopy{data: (l.data &^ 0x001F) | (n & 0x001F)}
}

func (l loopy) coarseY() uint16 {
	return (l.data & 0x03E0) >> 5
}

func (l loopy) withCoarseY(n uint16) loopy {
	return loopy{data: (l.data &^ 0x03E0) | ((n & 0x001F) << 5)}
}

func (l loopy) nametableX() uint16 {
	return (l.data & 0x0400) >> 10
}

func (l loopy) nametableY() uint16 {
	return (l.data & 0x0800) >> 11
}

// withNametable replaces both nametable-select bits at once, as used
// when PPUCTRL's low two bits are written.
func (l loopy) withNametable(n uint16) loopy {
	return loopy{data: (l.data &^ 0x0C00) | ((n & 0x03) << 10)}
}

func (l loopy) fineY() uint16 {
	return (l.data & 0x7000) >> 12
}

func (l loopy) withFineY(n uint16) loopy {
	return loopy{data: (l.data &^ 0x7000) | ((n & 0x07) << 12)}
}
