// Package nes coordinates the Cart, Bus, PPU and CPU into a runnable
// system, driving the CPU/PPU clock ratio and NMI delivery.
package nes

import (
	"fmt"
	"io"

	"github.com/nesgo/nesgo/bus"
	"github.com/nesgo/nesgo/cart"
	"github.com/nesgo/nesgo/cpu"
)

// NES is the complete emulated system: one cartridge, one bus, one
// PPU, one CPU.
type NES struct {
	cart   *cart.Cart
	bus    *bus.Bus
	cpu    *cpu.CPU
	cycles uint64
}

// Load parses an iNES image from r and wires up a fresh, unreset
// system around it.
func Load(r io.Reader) (*NES, error) {
	c, err := cart.Load(r)
	if err != nil {
		return nil, fmt.Errorf("nes: %w", err)
	}

	b := bus.New(c)
	cp := cpu.New(b)
	b.AttachCPU(cp)

	return &NES{cart: c, bus: b, cpu: cp}, nil
}

// Reset brings the system to its power-on/reset state: CPU registers
// per spec (SP=$FD, P=$24, PC from the reset vector).
func (n *NES) Reset() {
	n.cpu.Reset()
}

// SetButtons updates one controller port's button state ahead of the
// next StepFrame/StepInstruction call.
func (n *NES) SetButtons(port int, buttons uint8) {
	n.bus.SetButtons(port, buttons)
}

// StepInstruction executes exactly one CPU instruction, clocks the
// PPU three dots per CPU cycle consumed, and delivers any NMI the PPU
// raised during that window. It returns the number of CPU cycles the
// instruction took.
func (n *NES) StepInstruction() int {
	cycles := n.cpu.Step()
	n.bus.AddCycles(cycles)
	n.cycles += uint64(cycles)

	p := n.bus.PPU()
	for i := 0; i < cycles*3; i++ {
		p.Step()
	}
	if p.ConsumeNMI() {
		n.cpu.NMI()
	}
	return cycles
}

// StepFrame runs instructions until one full frame (scanline 241, dot
// 1, i.e. the start of the next VBlank) has been produced, and
// returns that frame's pixels. The returned slice is owned by the PPU
// and is only valid until the next StepFrame call.
func (n *NES) StepFrame() []uint32 {
	p := n.bus.PPU()
	start := p.FrameCount()
	for p.FrameCount() == start {
		n.StepInstruction()
	}
	return p.Frame()
}

// Frame returns the most recently rendered frame without advancing
// emulation.
func (n *NES) Frame() []uint32 {
	return n.bus.PPU().Frame()
}

// Cycles returns the total number of CPU cycles executed since Load.
func (n *NES) Cycles() uint64 {
	return n.cycles
}

// Cart returns the loaded cartridge, mostly for introspection tools.
func (n *NES) Cart() *cart.Cart {
	return n.cart
}
