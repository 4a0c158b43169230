package cpu

import "fmt"

// opcode is one row of the static dispatch table: which handler method
// to invoke by name (Step calls it by reflection), its addressing
// mode, instruction width in bytes, and base cycle cost before any
// page-cross/branch-taken penalty.
type opcode struct {
	name   string
	mode   uint8
	bytes  uint8
	cycles uint8
}

func (o opcode) String() string {
	return fmt.Sprintf("{%s, %s}", o.name, modeNames[o.mode])
}

// opcodes is the full official + undocumented instruction set. The
// teacher's opcodes.go sketched LAX/SAX/DCM/ISB only and mislabeled
// 0xA7 LAX as ZERO_PAGE_Y (should be plain ZERO_PAGE; only 0xB7 is
// Y-indexed) and invented a one-off ZERO_PAGE_X_BUT_Y mode for SAX
// 0x97 -- that opcode is simply ZERO_PAGE_Y, since SAX/LAX break the
// usual STA-family X-indexing convention for zero page. Neither quirk
// needs a dedicated mode here.
var opcodes = map[uint8]opcode{
	// ADC
	0x69: {"ADC", Immediate, 2, 2},
	0x65: {"ADC", ZeroPage, 2, 3},
	0x75: {"ADC", ZeroPageX, 2, 4},
	0x6D: {"ADC", Absolute, 3, 4},
	0x7D: {"ADC", AbsoluteX, 3, 4},
	0x79: {"ADC", AbsoluteY, 3, 4},
	0x61: {"ADC", IndirectX, 2, 6},
	0x71: {"ADC", IndirectY, 2, 5},
	// AND
	0x29: {"AND", Immediate, 2, 2},
	0x25: {"AND", ZeroPage, 2, 3},
	0x35: {"AND", ZeroPageX, 2, 4},
	0x2D: {"AND", Absolute, 3, 4},
	0x3D: {"AND", AbsoluteX, 3, 4},
	0x39: {"AND", AbsoluteY, 3, 4},
	0x21: {"AND", IndirectX, 2, 6},
	0x31: {"AND", IndirectY, 2, 5},
	// ASL
	0x0A: {"ASL", Accumulator, 1, 2},
	0x06: {"ASL", ZeroPage, 2, 5},
	0x16: {"ASL", ZeroPageX, 2, 6},
	0x0E: {"ASL", Absolute, 3, 6},
	0x1E: {"ASL", AbsoluteX, 3, 7},
	// branches
	0x90: {"BCC", Relative, 2, 2},
	0xB0: {"BCS", Relative, 2, 2},
	0xF0: {"BEQ", Relative, 2, 2},
	0x30: {"BMI", Relative, 2, 2},
	0xD0: {"BNE", Relative, 2, 2},
	0x10: {"BPL", Relative, 2, 2},
	0x50: {"BVC", Relative, 2, 2},
	0x70: {"BVS", Relative, 2, 2},
	// BIT
	0x24: {"BIT", ZeroPage, 2, 3},
	0x2C: {"BIT", Absolute, 3, 4},
	// BRK
	0x00: {"BRK", Implicit, 2, 7},
	// flag ops
	0x18: {"CLC", Implicit, 1, 2},
	0xD8: {"CLD", Implicit, 1, 2},
	0x58: {"CLI", Implicit, 1, 2},
	0xB8: {"CLV", Implicit, 1, 2},
	0x38: {"SEC", Implicit, 1, 2},
	0xF8: {"SED", Implicit, 1, 2},
	0x78: {"SEI", Implicit, 1, 2},
	// CMP/CPX/CPY
	0xC9: {"CMP", Immediate, 2, 2},
	0xC5: {"CMP", ZeroPage, 2, 3},
	0xD5: {"CMP", ZeroPageX, 2, 4},
	0xCD: {"CMP", Absolute, 3, 4},
	0xDD: {"CMP", AbsoluteX, 3, 4},
	0xD9: {"CMP", AbsoluteY, 3, 4},
	0xC1: {"CMP", IndirectX, 2, 6},
	0xD1: {"CMP", IndirectY, 2, 5},
	0xE0: {"CPX", Immediate, 2, 2},
	0xE4: {"CPX", ZeroPage, 2, 3},
	0xEC: {"CPX", Absolute, 3, 4},
	0xC0: {"CPY", Immediate, 2, 2},
	0xC4: {"CPY", ZeroPage, 2, 3},
	0xCC: {"CPY", Absolute, 3, 4},
	// DEC/DEX/DEY
	0xC6: {"DEC", ZeroPage, 2, 5},
	0xD6: {"DEC", ZeroPageX, 2, 6},
	0xCE: {"DEC", Absolute, 3, 6},
	0xDE: {"DEC", AbsoluteX, 3, 7},
	0xCA: {"DEX", Implicit, 1, 2},
	0x88: {"DEY", Implicit, 1, 2},
	// EOR
	0x49: {"EOR", Immediate, 2, 2},
	0x45: {"EOR", ZeroPage, 2, 3},
	0x55: {"EOR", ZeroPageX, 2, 4},
	0x4D: {"EOR", Absolute, 3, 4},
	0x5D: {"EOR", AbsoluteX, 3, 4},
	0x59: {"EOR", AbsoluteY, 3, 4},
	0x41: {"EOR", IndirectX, 2, 6},
	0x51: {"EOR", IndirectY, 2, 5},
	// INC/INX/INY
	0xE6: {"INC", ZeroPage, 2, 5},
	0xF6: {"INC", ZeroPageX, 2, 6},
	0xEE: {"INC", Absolute, 3, 6},
	0xFE: {"INC", AbsoluteX, 3, 7},
	0xE8: {"INX", Implicit, 1, 2},
	0xC8: {"INY", Implicit, 1, 2},
	// JMP/JSR
	0x4C: {"JMP", Absolute, 3, 3},
	0x6C: {"JMP", Indirect, 3, 5},
	0x20: {"JSR", Absolute, 3, 6},
	// LDA/LDX/LDY
	0xA9: {"LDA", Immediate, 2, 2},
	0xA5: {"LDA", ZeroPage, 2, 3},
	0xB5: {"LDA", ZeroPageX, 2, 4},
	0xAD: {"LDA", Absolute, 3, 4},
	0xBD: {"LDA", AbsoluteX, 3, 4},
	0xB9: {"LDA", AbsoluteY, 3, 4},
	0xA1: {"LDA", IndirectX, 2, 6},
	0xB1: {"LDA", IndirectY, 2, 5},
	0xA2: {"LDX", Immediate, 2, 2},
	0xA6: {"LDX", ZeroPage, 2, 3},
	0xB6: {"LDX", ZeroPageY, 2, 4},
	0xAE: {"LDX", Absolute, 3, 4},
	0xBE: {"LDX", AbsoluteY, 3, 4},
	0xA0: {"LDY", Immediate, 2, 2},
	0xA4: {"LDY", ZeroPage, 2, 3},
	0xB4: {"LDY", ZeroPageX, 2, 4},
	0xAC: {"LDY", Absolute, 3, 4},
	0xBC: {"LDY", AbsoluteX, 3, 4},
	// LSR
	0x4A: {"LSR", Accumulator, 1, 2},
	0x46: {"LSR", ZeroPage, 2, 5},
	0x56: {"LSR", ZeroPageX, 2, 6},
	0x4E: {"LSR", Absolute, 3, 6},
	0x5E: {"LSR", AbsoluteX, 3, 7},
	// NOP (official)
	0xEA: {"NOP", Implicit, 1, 2},
	// ORA
	0x09: {"ORA", Immediate, 2, 2},
	0x05: {"ORA", ZeroPage, 2, 3},
	0x15: {"ORA", ZeroPageX, 2, 4},
	0x0D: {"ORA", Absolute, 3, 4},
	0x1D: {"ORA", AbsoluteX, 3, 4},
	0x19: {"ORA", AbsoluteY, 3, 4},
	0x01: {"ORA", IndirectX, 2, 6},
	0x11: {"ORA", IndirectY, 2, 5},
	// stack ops
	0x48: {"PHA", Implicit, 1, 3},
	0x08: {"PHP", Implicit, 1, 3},
	0x68: {"PLA", Implicit, 1, 4},
	0x28: {"PLP", Implicit, 1, 4},
	// ROL/ROR
	0x2A: {"ROL", Accumulator, 1, 2},
	0x26: {"ROL", ZeroPage, 2, 5},
	0x36: {"ROL", ZeroPageX, 2, 6},
	0x2E: {"ROL", Absolute, 3, 6},
	0x3E: {"ROL", AbsoluteX, 3, 7},
	0x6A: {"ROR", Accumulator, 1, 2},
	0x66: {"ROR", ZeroPage, 2, 5},
	0x76: {"ROR", ZeroPageX, 2, 6},
	0x6E: {"ROR", Absolute, 3, 6},
	0x7E: {"ROR", AbsoluteX, 3, 7},
	// RTI/RTS
	0x40: {"RTI", Implicit, 1, 6},
	0x60: {"RTS", Implicit, 1, 6},
	// SBC (+ alternate encoding 0xEB)
	0xE9: {"SBC", Immediate, 2, 2},
	0xEB: {"SBC", Immediate, 2, 2},
	0xE5: {"SBC", ZeroPage, 2, 3},
	0xF5: {"SBC", ZeroPageX, 2, 4},
	0xED: {"SBC", Absolute, 3, 4},
	0xFD: {"SBC", AbsoluteX, 3, 4},
	0xF9: {"SBC", AbsoluteY, 3, 4},
	0xE1: {"SBC", IndirectX, 2, 6},
	0xF1: {"SBC", IndirectY, 2, 5},
	// STA/STX/STY
	0x85: {"STA", ZeroPage, 2, 3},
	0x95: {"STA", ZeroPageX, 2, 4},
	0x8D: {"STA", Absolute, 3, 4},
	0x9D: {"STA", AbsoluteX, 3, 5},
	0x99: {"STA", AbsoluteY, 3, 5},
	0x81: {"STA", IndirectX, 2, 6},
	0x91: {"STA", IndirectY, 2, 6},
	0x86: {"STX", ZeroPage, 2, 3},
	0x96: {"STX", ZeroPageY, 2, 4},
	0x8E: {"STX", Absolute, 3, 4},
	0x84: {"STY", ZeroPage, 2, 3},
	0x94: {"STY", ZeroPageX, 2, 4},
	0x8C: {"STY", Absolute, 3, 4},
	// transfers
	0xAA: {"TAX", Implicit, 1, 2},
	0xA8: {"TAY", Implicit, 1, 2},
	0xBA: {"TSX", Implicit, 1, 2},
	0x8A: {"TXA", Implicit, 1, 2},
	0x9A: {"TXS", Implicit, 1, 2},
	0x98: {"TYA", Implicit, 1, 2},

	// --- undocumented opcodes, decomposed per the documented rules ---

	// LAX = LDA then TAX
	0xA7: {"LAX", ZeroPage, 2, 3},
	0xB7: {"LAX", ZeroPageY, 2, 4},
	0xAF: {"LAX", Absolute, 3, 4},
	0xBF: {"LAX", AbsoluteY, 3, 4},
	0xA3: {"LAX", IndirectX, 2, 6},
	0xB3: {"LAX", IndirectY, 2, 5},
	// SAX = store (A AND X)
	0x87: {"SAX", ZeroPage, 2, 3},
	0x97: {"SAX", ZeroPageY, 2, 4},
	0x8F: {"SAX", Absolute, 3, 4},
	0x83: {"SAX", IndirectX, 2, 6},
	// DCP (DCM) = DEC then CMP
	0xC7: {"DCP", ZeroPage, 2, 5},
	0xD7: {"DCP", ZeroPageX, 2, 6},
	0xCF: {"DCP", Absolute, 3, 6},
	0xDF: {"DCP", AbsoluteX, 3, 7},
	0xDB: {"DCP", AbsoluteY, 3, 7},
	0xC3: {"DCP", IndirectX, 2, 8},
	0xD3: {"DCP", IndirectY, 2, 8},
	// ISB (ISC) = INC then SBC
	0xE7: {"ISB", ZeroPage, 2, 5},
	0xF7: {"ISB", ZeroPageX, 2, 6},
	0xEF: {"ISB", Absolute, 3, 6},
	0xFF: {"ISB", AbsoluteX, 3, 7},
	0xFB: {"ISB", AbsoluteY, 3, 7},
	0xE3: {"ISB", IndirectX, 2, 8},
	0xF3: {"ISB", IndirectY, 2, 8},
	// SLO = ASL then ORA
	0x07: {"SLO", ZeroPage, 2, 5},
	0x17: {"SLO", ZeroPageX, 2, 6},
	0x0F: {"SLO", Absolute, 3, 6},
	0x1F: {"SLO", AbsoluteX, 3, 7},
	0x1B: {"SLO", AbsoluteY, 3, 7},
	0x03: {"SLO", IndirectX, 2, 8},
	0x13: {"SLO", IndirectY, 2, 8},
	// RLA = ROL then AND
	0x27: {"RLA", ZeroPage, 2, 5},
	0x37: {"RLA", ZeroPageX, 2, 6},
	0x2F: {"RLA", Absolute, 3, 6},
	0x3F: {"RLA", AbsoluteX, 3, 7},
	0x3B: {"RLA", AbsoluteY, 3, 7},
	0x23: {"RLA", IndirectX, 2, 8},
	0x33: {"RLA", IndirectY, 2, 8},
	// SRE = LSR then EOR
	0x47: {"SRE", ZeroPage, 2, 5},
	0x57: {"SRE", ZeroPageX, 2, 6},
	0x4F: {"SRE", Absolute, 3, 6},
	0x5F: {"SRE", AbsoluteX, 3, 7},
	0x5B: {"SRE", AbsoluteY, 3, 7},
	0x43: {"SRE", IndirectX, 2, 8},
	0x53: {"SRE", IndirectY, 2, 8},
	// RRA = ROR then ADC
	0x67: {"RRA", ZeroPage, 2, 5},
	0x77: {"RRA", ZeroPageX, 2, 6},
	0x6F: {"RRA", Absolute, 3, 6},
	0x7F: {"RRA", AbsoluteX, 3, 7},
	0x7B: {"RRA", AbsoluteY, 3, 7},
	0x63: {"RRA", IndirectX, 2, 8},
	0x73: {"RRA", IndirectY, 2, 8},
	// immediate-operand oddballs
	0x0B: {"ANC", Immediate, 2, 2},
	0x2B: {"ANC", Immediate, 2, 2},
	0x4B: {"ALR", Immediate, 2, 2},
	0x6B: {"ARR", Immediate, 2, 2},
	0xCB: {"AXS", Immediate, 2, 2},
	0xAB: {"LXA", Immediate, 2, 2},
	0x8B: {"XAA", Immediate, 2, 2},
	// LAS/TAS/AHX/SHX/SHY (high-byte-unstable store family)
	0xBB: {"LAS", AbsoluteY, 3, 4},
	0x9B: {"TAS", AbsoluteY, 3, 5},
	0x93: {"AHX", IndirectY, 2, 6},
	0x9F: {"AHX", AbsoluteY, 3, 5},
	0x9E: {"SHX", AbsoluteY, 3, 5},
	0x9C: {"SHY", AbsoluteX, 3, 5},
	// alternate NOPs: consume their operand cycles, change nothing
	0x1A: {"NOP", Implicit, 1, 2},
	0x3A: {"NOP", Implicit, 1, 2},
	0x5A: {"NOP", Implicit, 1, 2},
	0xDA: {"NOP", Implicit, 1, 2},
	0xFA: {"NOP", Implicit, 1, 2},
	0x80: {"NOP", Immediate, 2, 2},
	0x82: {"NOP", Immediate, 2, 2},
	0x89: {"NOP", Immediate, 2, 2},
	0xC2: {"NOP", Immediate, 2, 2},
	0xE2: {"NOP", Immediate, 2, 2},
	0x04: {"NOP", ZeroPage, 2, 3},
	0x44: {"NOP", ZeroPage, 2, 3},
	0x64: {"NOP", ZeroPage, 2, 3},
	0x14: {"NOP", ZeroPageX, 2, 4},
	0x34: {"NOP", ZeroPageX, 2, 4},
	0x54: {"NOP", ZeroPageX, 2, 4},
	0x74: {"NOP", ZeroPageX, 2, 4},
	0xD4: {"NOP", ZeroPageX, 2, 4},
	0xF4: {"NOP", ZeroPageX, 2, 4},
	0x0C: {"NOP", Absolute, 3, 4},
	0x1C: {"NOP", AbsoluteX, 3, 4},
	0x3C: {"NOP", AbsoluteX, 3, 4},
	0x5C: {"NOP", AbsoluteX, 3, 4},
	0x7C: {"NOP", AbsoluteX, 3, 4},
	0xDC: {"NOP", AbsoluteX, 3, 4},
	0xFC: {"NOP", AbsoluteX, 3, 4},
}
