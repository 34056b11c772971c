package cpu

// opcode describes one of the 256 possible opcode bytes: its mnemonic
// (for logging/tests only), addressing mode, total instruction length
// in bytes, base cycle count, and handler. Unlisted bytes are absent
// from opcodeTable and handled by CPU.unimplemented.
type opcode struct {
	name   string
	mode   AddrMode
	bytes  uint8
	cycles uint8
	fn     func(*CPU, AddrMode)
}

var opcodeTable = buildOpcodeTable()

// add registers one opcode byte. bytes is derived from mode so
// callers can't desync the two.
func buildOpcodeTable() map[uint8]opcode {
	t := make(map[uint8]opcode, 256)
	add := func(b uint8, name string, mode AddrMode, cycles uint8, fn func(*CPU, AddrMode)) {
		t[b] = opcode{name: name, mode: mode, bytes: 1 + operandBytes(mode), cycles: cycles, fn: fn}
	}

	// Load/store.
	add(0xA9, "LDA", Immediate, 2, opLDA)
	add(0xA5, "LDA", ZeroPage, 3, opLDA)
	add(0xB5, "LDA", ZeroPageX, 4, opLDA)
	add(0xAD, "LDA", Absolute, 4, opLDA)
	add(0xBD, "LDA", AbsoluteX, 4, opLDA)
	add(0xB9, "LDA", AbsoluteY, 4, opLDA)
	add(0xA1, "LDA", IndirectX, 6, opLDA)
	add(0xB1, "LDA", IndirectY, 5, opLDA)

	add(0xA2, "LDX", Immediate, 2, opLDX)
	add(0xA6, "LDX", ZeroPage, 3, opLDX)
	add(0xB6, "LDX", ZeroPageY, 4, opLDX)
	add(0xAE, "LDX", Absolute, 4, opLDX)
	add(0xBE, "LDX", AbsoluteY, 4, opLDX)

	add(0xA0, "LDY", Immediate, 2, opLDY)
	add(0xA4, "LDY", ZeroPage, 3, opLDY)
	add(0xB4, "LDY", ZeroPageX, 4, opLDY)
	add(0xAC, "LDY", Absolute, 4, opLDY)
	add(0xBC, "LDY", AbsoluteX, 4, opLDY)

	add(0x85, "STA", ZeroPage, 3, opSTA)
	add(0x95, "STA", ZeroPageX, 4, opSTA)
	add(0x8D, "STA", Absolute, 4, opSTA)
	add(0x9D, "STA", AbsoluteX, 5, opSTA)
	add(0x99, "STA", AbsoluteY, 5, opSTA)
	add(0x81, "STA", IndirectX, 6, opSTA)
	add(0x91, "STA", IndirectY, 6, opSTA)

	add(0x86, "STX", ZeroPage, 3, opSTX)
	add(0x96, "STX", ZeroPageY, 4, opSTX)
	add(0x8E, "STX", Absolute, 4, opSTX)

	add(0x84, "STY", ZeroPage, 3, opSTY)
	add(0x94, "STY", ZeroPageX, 4, opSTY)
	add(0x8C, "STY", Absolute, 4, opSTY)

	// Register transfers.
	add(0xAA, "TAX", Implied, 2, opTAX)
	add(0xA8, "TAY", Implied, 2, opTAY)
	add(0x8A, "TXA", Implied, 2, opTXA)
	add(0x98, "TYA", Implied, 2, opTYA)
	add(0xBA, "TSX", Implied, 2, opTSX)
	add(0x9A, "TXS", Implied, 2, opTXS)

	// Stack.
	add(0x48, "PHA", Implied, 3, opPHA)
	add(0x08, "PHP", Implied, 3, opPHP)
	add(0x68, "PLA", Implied, 4, opPLA)
	add(0x28, "PLP", Implied, 4, opPLP)

	// Logic.
	add(0x29, "AND", Immediate, 2, opAND)
	add(0x25, "AND", ZeroPage, 3, opAND)
	add(0x35, "AND", ZeroPageX, 4, opAND)
	add(0x2D, "AND", Absolute, 4, opAND)
	add(0x3D, "AND", AbsoluteX, 4, opAND)
	add(0x39, "AND", AbsoluteY, 4, opAND)
	add(0x21, "AND", IndirectX, 6, opAND)
	add(0x31, "AND", IndirectY, 5, opAND)

	add(0x49, "EOR", Immediate, 2, opEOR)
	add(0x45, "EOR", ZeroPage, 3, opEOR)
	add(0x55, "EOR", ZeroPageX, 4, opEOR)
	add(0x4D, "EOR", Absolute, 4, opEOR)
	add(0x5D, "EOR", AbsoluteX, 4, opEOR)
	add(0x59, "EOR", AbsoluteY, 4, opEOR)
	add(0x41, "EOR", IndirectX, 6, opEOR)
	add(0x51, "EOR", IndirectY, 5, opEOR)

	add(0x09, "ORA", Immediate, 2, opORA)
	add(0x05, "ORA", ZeroPage, 3, opORA)
	add(0x15, "ORA", ZeroPageX, 4, opORA)
	add(0x0D, "ORA", Absolute, 4, opORA)
	add(0x1D, "ORA", AbsoluteX, 4, opORA)
	add(0x19, "ORA", AbsoluteY, 4, opORA)
	add(0x01, "ORA", IndirectX, 6, opORA)
	add(0x11, "ORA", IndirectY, 5, opORA)

	add(0x24, "BIT", ZeroPage, 3, opBIT)
	add(0x2C, "BIT", Absolute, 4, opBIT)

	// Arithmetic.
	add(0x69, "ADC", Immediate, 2, opADC)
	add(0x65, "ADC", ZeroPage, 3, opADC)
	add(0x75, "ADC", ZeroPageX, 4, opADC)
	add(0x6D, "ADC", Absolute, 4, opADC)
	add(0x7D, "ADC", AbsoluteX, 4, opADC)
	add(0x79, "ADC", AbsoluteY, 4, opADC)
	add(0x61, "ADC", IndirectX, 6, opADC)
	add(0x71, "ADC", IndirectY, 5, opADC)

	add(0xE9, "SBC", Immediate, 2, opSBC)
	add(0xE5, "SBC", ZeroPage, 3, opSBC)
	add(0xF5, "SBC", ZeroPageX, 4, opSBC)
	add(0xED, "SBC", Absolute, 4, opSBC)
	add(0xFD, "SBC", AbsoluteX, 4, opSBC)
	add(0xF9, "SBC", AbsoluteY, 4, opSBC)
	add(0xE1, "SBC", IndirectX, 6, opSBC)
	add(0xF1, "SBC", IndirectY, 5, opSBC)

	add(0xC9, "CMP", Immediate, 2, opCMP)
	add(0xC5, "CMP", ZeroPage, 3, opCMP)
	add(0xD5, "CMP", ZeroPageX, 4, opCMP)
	add(0xCD, "CMP", Absolute, 4, opCMP)
	add(0xDD, "CMP", AbsoluteX, 4, opCMP)
	add(0xD9, "CMP", AbsoluteY, 4, opCMP)
	add(0xC1, "CMP", IndirectX, 6, opCMP)
	add(0xD1, "CMP", IndirectY, 5, opCMP)

	add(0xE0, "CPX", Immediate, 2, opCPX)
	add(0xE4, "CPX", ZeroPage, 3, opCPX)
	add(0xEC, "CPX", Absolute, 4, opCPX)

	add(0xC0, "CPY", Immediate, 2, opCPY)
	add(0xC4, "CPY", ZeroPage, 3, opCPY)
	add(0xCC, "CPY", Absolute, 4, opCPY)

	// Increment/decrement.
	add(0xE6, "INC", ZeroPage, 5, opINC)
	add(0xF6, "INC", ZeroPageX, 6, opINC)
	add(0xEE, "INC", Absolute, 6, opINC)
	add(0xFE, "INC", AbsoluteX, 7, opINC)
	add(0xE8, "INX", Implied, 2, opINX)
	add(0xC8, "INY", Implied, 2, opINY)

	add(0xC6, "DEC", ZeroPage, 5, opDEC)
	add(0xD6, "DEC", ZeroPageX, 6, opDEC)
	add(0xCE, "DEC", Absolute, 6, opDEC)
	add(0xDE, "DEC", AbsoluteX, 7, opDEC)
	add(0xCA, "DEX", Implied, 2, opDEX)
	add(0x88, "DEY", Implied, 2, opDEY)

	// Shifts.
	add(0x0A, "ASL", Accumulator, 2, opASL)
	add(0x06, "ASL", ZeroPage, 5, opASL)
	add(0x16, "ASL", ZeroPageX, 6, opASL)
	add(0x0E, "ASL", Absolute, 6, opASL)
	add(0x1E, "ASL", AbsoluteX, 7, opASL)

	add(0x4A, "LSR", Accumulator, 2, opLSR)
	add(0x46, "LSR", ZeroPage, 5, opLSR)
	add(0x56, "LSR", ZeroPageX, 6, opLSR)
	add(0x4E, "LSR", Absolute, 6, opLSR)
	add(0x5E, "LSR", AbsoluteX, 7, opLSR)

	add(0x2A, "ROL", Accumulator, 2, opROL)
	add(0x26, "ROL", ZeroPage, 5, opROL)
	add(0x36, "ROL", ZeroPageX, 6, opROL)
	add(0x2E, "ROL", Absolute, 6, opROL)
	add(0x3E, "ROL", AbsoluteX, 7, opROL)

	add(0x6A, "ROR", Accumulator, 2, opROR)
	add(0x66, "ROR", ZeroPage, 5, opROR)
	add(0x76, "ROR", ZeroPageX, 6, opROR)
	add(0x6E, "ROR", Absolute, 6, opROR)
	add(0x7E, "ROR", AbsoluteX, 7, opROR)

	// Jumps and calls.
	add(0x4C, "JMP", Absolute, 3, opJMP)
	add(0x6C, "JMP", Indirect, 5, opJMP)
	add(0x20, "JSR", Absolute, 6, opJSR)
	add(0x60, "RTS", Implied, 6, opRTS)
	add(0x40, "RTI", Implied, 6, opRTI)

	// Branches (base cycles exclude the taken/page-cross extras,
	// which opBranch adds via c.extraCycles).
	add(0x90, "BCC", Relative, 2, opBCC)
	add(0xB0, "BCS", Relative, 2, opBCS)
	add(0xF0, "BEQ", Relative, 2, opBEQ)
	add(0x30, "BMI", Relative, 2, opBMI)
	add(0xD0, "BNE", Relative, 2, opBNE)
	add(0x10, "BPL", Relative, 2, opBPL)
	add(0x50, "BVC", Relative, 2, opBVC)
	add(0x70, "BVS", Relative, 2, opBVS)

	// Status flag changes.
	add(0x18, "CLC", Implied, 2, opCLC)
	add(0xD8, "CLD", Implied, 2, opCLD)
	add(0x58, "CLI", Implied, 2, opCLI)
	add(0xB8, "CLV", Implied, 2, opCLV)
	add(0x38, "SEC", Implied, 2, opSEC)
	add(0xF8, "SED", Implied, 2, opSED)
	add(0x78, "SEI", Implied, 2, opSEI)

	// System.
	add(0x00, "BRK", Implied, 7, opBRK)
	add(0xEA, "NOP", Implied, 2, opNOP)

	return t
}
