// Package bus implements the NES's CPU-visible 16-bit address space:
// RAM mirroring, PPU register mirroring, OAM DMA, controller ports,
// and the PRG-ROM window onto the cartridge.
package bus

import (
	"github.com/nesgo/nesgo/cart"
	"github.com/nesgo/nesgo/cpu"
	"github.com/nesgo/nesgo/ppu"
)

const (
	ramSize = 0x0800
)

// Bus wires together cartridge, PPU and CPU; it implements cpu.Bus so
// a *Bus can be passed directly to cpu.New.
type Bus struct {
	ram [ramSize]uint8

	cart *cart.Cart
	ppu  *ppu.PPU
	cpu  *cpu.CPU

	controllers [2]Controller

	cycles uint64 // running CPU cycle count, used only to approximate OAM DMA's +1-on-odd-cycle stall
}

// New creates a Bus wired to cart's PRG/CHR data and a fresh PPU.
// Call AttachCPU before running any code that can reach $4014 (OAM
// DMA), since the DMA stall is reported through the CPU.
func New(c *cart.Cart) *Bus {
	b := &Bus{cart: c}
	b.ppu = ppu.New(c)
	return b
}

// AttachCPU completes the wiring cycle (Bus needs a CPU for DMA stall
// reporting; CPU needs a Bus to read/write through).
func (b *Bus) AttachCPU(c *cpu.CPU) {
	b.cpu = c
}

// PPU exposes the PPU for the nes package's frame/NMI polling.
func (b *Bus) PPU() *ppu.PPU {
	return b.ppu
}

// SetButtons updates one controller port's live button state; the
// host calls this once per frame, before running CPU instructions
// that might poll it.
func (b *Bus) SetButtons(port int, buttons uint8) {
	b.controllers[port].SetButtons(buttons)
}

// AddCycles records CPU cycles elapsed since the last call.
func (b *Bus) AddCycles(n int) {
	b.cycles += uint64(n)
}

// Read implements cpu.Bus, decoding a CPU address per
// https://www.nesdev.org/wiki/CPU_memory_map.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr%ramSize]
	case addr < 0x4000:
		return b.ppu.ReadRegister((addr - 0x2000) % 8)
	case addr == 0x4016:
		return b.controllers[0].Read()
	case addr == 0x4017:
		return b.controllers[1].Read()
	case addr < 0x4020:
		return 0 // APU registers: not modeled, per spec's Non-goals
	case addr < 0x8000:
		return 0 // $4020-$7FFF: unmapped/expansion, reads as 0
	default:
		return b.cart.PrgRead(addr)
	}
}

// Write implements cpu.Bus.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr%ramSize] = val
	case addr < 0x4000:
		b.ppu.WriteRegister((addr-0x2000)%8, val)
	case addr == 0x4014:
		b.oamDMA(val)
	case addr == 0x4016:
		// The strobe line is physically shared by both controller ports.
		b.controllers[0].Write(val)
		b.controllers[1].Write(val)
	case addr < 0x4020:
		// APU registers and the $4017 frame-counter write: not modeled.
	case addr < 0x8000:
		// $4020-$7FFF: unmapped/expansion, writes discarded
	default:
		b.cart.PrgWrite(addr, val)
	}
}

// oamDMA copies 256 bytes starting at page*$100 into OAM and charges
// the CPU the 513/514-cycle stall real hardware incurs.
func (b *Bus) oamDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMByte(b.Read(base + uint16(i)))
	}
	stall := 513
	if b.cycles%2 == 1 {
		stall = 514
	}
	if b.cpu != nil {
		b.cpu.AddDMAStall(stall)
	}
}
