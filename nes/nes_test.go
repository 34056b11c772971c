package nes

import (
	"bytes"
	"testing"
)

// buildROM assembles a minimal NROM image whose reset vector points
// at a tight infinite loop, enough to exercise Load/Reset/Step
// without needing a real game binary.
func buildROM() []byte {
	var buf bytes.Buffer
	buf.WriteString("NES\x1a")
	buf.WriteByte(1) // 1 PRG bank (16KB, mirrored into $8000 and $C000)
	buf.WriteByte(1) // 1 CHR bank
	buf.Write(make([]byte, 10))

	prg := make([]byte, 16384)
	// Reset vector ($FFFC/$FFFD, which lives at the end of the
	// mirrored 16KB bank) points at $8000.
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	// $8000: JMP $8000 (spin forever).
	prg[0x0000] = 0x4C
	prg[0x0001] = 0x00
	prg[0x0002] = 0x80
	buf.Write(prg)
	buf.Write(make([]byte, 8192))

	return buf.Bytes()
}

func TestLoadAndReset(t *testing.T) {
	n, err := Load(bytes.NewReader(buildROM()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	n.Reset()

	if got := n.cpu.PC; got != 0x8000 {
		t.Errorf("PC after Reset = %#04x, want $8000", got)
	}
}

func TestStepInstructionAdvancesCycles(t *testing.T) {
	n, err := Load(bytes.NewReader(buildROM()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	n.Reset()

	before := n.Cycles()
	n.StepInstruction()
	if n.Cycles() <= before {
		t.Errorf("Cycles() did not advance: before=%d after=%d", before, n.Cycles())
	}
}

func TestStepFrameProducesFullFramebuffer(t *testing.T) {
	n, err := Load(bytes.NewReader(buildROM()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	n.Reset()

	frame := n.StepFrame()
	if len(frame) != 256*240 {
		t.Errorf("len(frame) = %d, want %d", len(frame), 256*240)
	}
}
