package ppu

import (
	"testing"

	"github.com/nesgo/nesgo/ines"
)

type fakeCart struct {
	chr       [0x2000]uint8
	mirroring ines.Mirroring
}

func (f *fakeCart) ChrRead(addr uint16) uint8        { return f.chr[addr] }
func (f *fakeCart) ChrWrite(addr uint16, val uint8)  { f.chr[addr] = val }
func (f *fakeCart) Mirroring() ines.Mirroring        { return f.mirroring }

func newTestPPU(mirroring ines.Mirroring) (*PPU, *fakeCart) {
	c := &fakeCart{mirroring: mirroring}
	return New(c), c
}

func TestFrameDotCount(t *testing.T) {
	p, _ := newTestPPU(ines.MirrorHorizontal)
	startScanline, startDot := p.scanline, p.dot

	dots := 0
	for {
		p.Step()
		dots++
		if p.scanline == startScanline && p.dot == startDot {
			break
		}
	}

	if want := dotsPerScanline * (preRenderLine + 1); dots != want {
		t.Errorf("dots per frame = %d, want %d", dots, want)
	}
}

func TestVBlankSetAndClearedByStatusRead(t *testing.T) {
	p, _ := newTestPPU(ines.MirrorHorizontal)

	for p.scanline != vblankStartLine || p.dot != 1 {
		p.Step()
	}

	if p.status&statusVBlank == 0 {
		t.Fatal("expected VBlank flag set at scanline 241, dot 1")
	}

	got := p.ReadRegister(RegStatus)
	if got&statusVBlank == 0 {
		t.Error("ReadRegister(status) didn't reflect VBlank before clearing it")
	}
	if p.status&statusVBlank != 0 {
		t.Error("reading PPUSTATUS did not clear VBlank")
	}
	if p.w {
		t.Error("reading PPUSTATUS did not clear the write latch")
	}
}

func TestNMIEdgeTriggered(t *testing.T) {
	p, _ := newTestPPU(ines.MirrorHorizontal)
	p.WriteRegister(RegCtrl, ctrlGenerateNMI)

	fired := false
	for i := 0; i < dotsPerScanline*(preRenderLine+1); i++ {
		p.Step()
		if p.ConsumeNMI() {
			fired = true
			break
		}
	}
	if !fired {
		t.Fatal("expected one NMI per frame with CTRL bit 7 set")
	}
	if p.ConsumeNMI() {
		t.Error("ConsumeNMI fired twice for a single VBlank edge")
	}
}

func TestAddrWriteLatchAndData(t *testing.T) {
	p, cart := newTestPPU(ines.MirrorHorizontal)
	cart.chr[0x0010] = 0x42

	p.WriteRegister(RegAddr, 0x00)
	p.WriteRegister(RegAddr, 0x10)

	// First PPUDATA read returns the stale buffer, not the fresh byte.
	first := p.ReadRegister(RegData)
	if first == 0x42 {
		t.Error("first PPUDATA read after PPUADDR should be buffered (stale), not immediate")
	}
	second := p.ReadRegister(RegData)
	if second != 0x42 {
		t.Errorf("second PPUDATA read = %#02x, want 0x42", second)
	}
}

func TestNametableMirroringHorizontal(t *testing.T) {
	p, _ := newTestPPU(ines.MirrorHorizontal)
	// Horizontal mirroring: $2000 and $2400 share physical RAM;
	// $2800 and $2C00 share a different half.
	if p.mirrorNametable(0x2000) != p.mirrorNametable(0x2400) {
		t.Error("horizontal mirroring: $2000 and $2400 should alias")
	}
	if p.mirrorNametable(0x2000) == p.mirrorNametable(0x2800) {
		t.Error("horizontal mirroring: $2000 and $2800 should not alias")
	}
}

func TestNametableMirroringVertical(t *testing.T) {
	p, _ := newTestPPU(ines.MirrorVertical)
	// Vertical mirroring: $2000 and $2800 share physical RAM;
	// $2400 and $2C00 share a different half.
	if p.mirrorNametable(0x2000) != p.mirrorNametable(0x2800) {
		t.Error("vertical mirroring: $2000 and $2800 should alias")
	}
	if p.mirrorNametable(0x2000) == p.mirrorNametable(0x2400) {
		t.Error("vertical mirroring: $2000 and $2400 should not alias")
	}
}

func TestPaletteMirroring(t *testing.T) {
	p, _ := newTestPPU(ines.MirrorHorizontal)
	p.writePalette(0x3F00, 0x0A)
	if got := p.readPalette(0x3F10); got != 0x0A {
		t.Errorf("readPalette($3F10) = %#02x, want 0x0A (aliases $3F00)", got)
	}
}

func TestOAMDMAByte(t *testing.T) {
	p, _ := newTestPPU(ines.MirrorHorizontal)
	p.WriteRegister(RegOAMAddr, 0x10)
	p.WriteOAMByte(0x99)
	if p.oam[0x10] != 0x99 {
		t.Errorf("oam[0x10] = %#02x, want 0x99", p.oam[0x10])
	}
	if p.oamAddr != 0x11 {
		t.Errorf("oamAddr = %#02x, want 0x11 (incremented)", p.oamAddr)
	}
}
