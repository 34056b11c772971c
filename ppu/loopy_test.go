package ppu

import "testing"

func TestLoopyCoarseXY(t *testing.T) {
	var l loopy
	l = l.withCoarseX(0x1F)
	if l.coarseX() != 0x1F {
		t.Errorf("coarseX() = %#x, want 0x1F", l.coarseX())
	}
	l = l.withCoarseY(0x1D)
	if l.coarseY() != 0x1D {
		t.Errorf("coarseY() = %#x, want 0x1D", l.coarseY())
	}
	if l.coarseX() != 0x1F {
		t.Errorf("coarseX() clobbered by withCoarseY, got %#x", l.coarseX())
	}
}

func TestLoopyNametableAndFineY(t *testing.T) {
	var l loopy
	l = l.withNametable(0x03)
	if l.nametableX() != 1 || l.nametableY() != 1 {
		t.Errorf("nametableX/Y = %d/%d, want 1/1", l.nametableX(), l.nametableY())
	}
	l = l.withFineY(0x05)
	if l.fineY() != 0x05 {
		t.Errorf("fineY() = %#x, want 5", l.fineY())
	}
	if l.nametableX() != 1 || l.nametableY() != 1 {
		t.Errorf("nametable clobbered by withFineY, got %d/%d", l.nametableX(), l.nametableY())
	}
}
