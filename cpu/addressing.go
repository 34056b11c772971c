package cpu

// AddrMode identifies one of the 6502's addressing modes. Handlers
// receive their mode so one function can serve every mode it supports
// (e.g. ADC works identically across eight of them).
type AddrMode uint8

const (
	Implied AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// resolve computes the effective address for mode and reports whether
// doing so crossed a page boundary. Implied and Accumulator have no
// address and must not be passed here.
func (c *CPU) resolve(mode AddrMode) (addr uint16, crossed bool) {
	switch mode {
	case Immediate:
		return c.PC, false
	case ZeroPage:
		return uint16(c.bus.Read(c.PC)), false
	case ZeroPageX:
		return uint16(c.bus.Read(c.PC) + c.X), false
	case ZeroPageY:
		return uint16(c.bus.Read(c.PC) + c.Y), false
	case Absolute:
		return c.read16(c.PC), false
	case AbsoluteX:
		base := c.read16(c.PC)
		addr = base + uint16(c.X)
		return addr, pageDiffers(base, addr)
	case AbsoluteY:
		base := c.read16(c.PC)
		addr = base + uint16(c.Y)
		return addr, pageDiffers(base, addr)
	case Indirect:
		ptr := c.read16(c.PC)
		return c.read16Bugged(ptr), false
	case IndirectX:
		zp := c.bus.Read(c.PC) + c.X
		return c.read16ZeroPage(zp), false
	case IndirectY:
		zp := c.bus.Read(c.PC)
		base := c.read16ZeroPage(zp)
		addr = base + uint16(c.Y)
		return addr, pageDiffers(base, addr)
	default:
		panic("cpu: resolve called with an addressless mode")
	}
}

// operandBytes reports how many bytes of operand mode consumes after
// the opcode byte, for building the opcode table.
func operandBytes(mode AddrMode) uint8 {
	switch mode {
	case Implied, Accumulator:
		return 0
	case ZeroPage, ZeroPageX, ZeroPageY, Relative, IndirectX, IndirectY, Immediate:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 0
	}
}

// readOperand resolves mode and reads the byte there, charging a
// page-cross cycle when the mode is one that varies with it.
func (c *CPU) readOperand(mode AddrMode) uint8 {
	addr, crossed := c.resolve(mode)
	if crossed {
		c.extraCycles++
	}
	return c.bus.Read(addr)
}

// writeAddr resolves mode for a store or read-modify-write without
// charging a page-cross penalty: every addressing mode that can reach
// a store instruction already has that cost folded into its fixed
// cycle count in the opcode table.
func (c *CPU) writeAddr(mode AddrMode) uint16 {
	addr, _ := c.resolve(mode)
	return addr
}

func pageDiffers(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// read16ZeroPage reads a little-endian pointer out of zero page,
// wrapping the high-byte fetch within the page (needed by IndirectX
// and IndirectY).
func (c *CPU) read16ZeroPage(zp uint8) uint16 {
	lo := uint16(c.bus.Read(uint16(zp)))
	hi := uint16(c.bus.Read(uint16(zp + 1)))
	return hi<<8 | lo
}

// read16Bugged reproduces the original 6502's indirect-JMP bug: if
// the pointer's low byte is $FF, the high byte is fetched from the
// start of the same page instead of the next page.
func (c *CPU) read16Bugged(ptr uint16) uint16 {
	lo := uint16(c.bus.Read(ptr))
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := uint16(c.bus.Read(hiAddr))
	return hi<<8 | lo
}
