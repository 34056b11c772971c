package ppu

// spritePriority is OAM attribute byte bit 5: whether the sprite draws
// in front of or behind opaque background pixels.
type spritePriority uint8

const (
	priorityFront spritePriority = iota
	priorityBehind
)

// sprite is one OAM entry, unpacked from its 4 raw bytes.
// https://www.nesdev.org/wiki/PPU_OAM
type sprite struct {
	// top-of-sprite Y, already hardware-delayed by one scanline; a
	// sprite is hidden by parking y at $EF-$FF.
	top uint8
	// pattern-table tile index (8x8 sprites only here; see
	// renderSprites for the size limitation).
	tile uint8

	subpalette uint8 // which of the 4 sprite palettes (0-3)
	priority   spritePriority
	flipV      bool
	flipH      bool

	left uint8 // left-of-sprite X
}

// decodeSprite unpacks 4 raw OAM bytes (Y, tile, attributes, X) into
// a sprite.
func decodeSprite(raw []uint8) sprite {
	attr := raw[2]
	return sprite{
		top:        raw[0],
		tile:       raw[1],
		subpalette: attr & 0x03,
		priority:   spritePriority((attr >> 5) & 0x01),
		flipH:      attr&0x40 != 0,
		flipV:      attr&0x80 != 0,
		left:       raw[3],
	}
}
