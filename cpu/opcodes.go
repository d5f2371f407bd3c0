package cpu

// AddressingMode identifies one of the 13 ways a 6502 instruction can locate
// its operand.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

var modeNames = map[AddressingMode]string{
	Implied:     "Implied",
	Accumulator: "Accumulator",
	Immediate:   "Immediate",
	ZeroPage:    "ZeroPage",
	ZeroPageX:   "ZeroPageX",
	ZeroPageY:   "ZeroPageY",
	Absolute:    "Absolute",
	AbsoluteX:   "AbsoluteX",
	AbsoluteY:   "AbsoluteY",
	Indirect:    "Indirect",
	IndirectX:   "IndirectX",
	IndirectY:   "IndirectY",
	Relative:    "Relative",
}

func (m AddressingMode) String() string { return modeNames[m] }

// Mnemonic identifies one of the 56 documented 6502 instructions.
type Mnemonic int

const (
	ADC Mnemonic = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

var mnemonicNames = map[Mnemonic]string{
	ADC: "ADC", AND: "AND", ASL: "ASL", BCC: "BCC", BCS: "BCS", BEQ: "BEQ",
	BIT: "BIT", BMI: "BMI", BNE: "BNE", BPL: "BPL", BRK: "BRK", BVC: "BVC",
	BVS: "BVS", CLC: "CLC", CLD: "CLD", CLI: "CLI", CLV: "CLV", CMP: "CMP",
	CPX: "CPX", CPY: "CPY", DEC: "DEC", DEX: "DEX", DEY: "DEY", EOR: "EOR",
	INC: "INC", INX: "INX", INY: "INY", JMP: "JMP", JSR: "JSR", LDA: "LDA",
	LDX: "LDX", LDY: "LDY", LSR: "LSR", NOP: "NOP", ORA: "ORA", PHA: "PHA",
	PHP: "PHP", PLA: "PLA", PLP: "PLP", ROL: "ROL", ROR: "ROR", RTI: "RTI",
	RTS: "RTS", SBC: "SBC", SEC: "SEC", SED: "SED", SEI: "SEI", STA: "STA",
	STX: "STX", STY: "STY", TAX: "TAX", TAY: "TAY", TSX: "TSX", TXA: "TXA",
	TXS: "TXS", TYA: "TYA",
}

func (m Mnemonic) String() string { return mnemonicNames[m] }

// Instruction is the decoded form of a single opcode byte: everything C2/C3
// need to evaluate the addressing mode and execute the instruction.
type Instruction struct {
	Opcode     uint8
	Mnemonic   Mnemonic
	Mode       AddressingMode
	BaseCycles uint8
	Length     uint8
}

// baseCycles below matches the table in SPEC_FULL.md exactly; "+1" comments
// document the conditional penalties applied by the executor (page crossing,
// branch taken, branch page crossing), not part of BaseCycles itself.
var illegalOpcode = Instruction{Mnemonic: NOP, Mode: Implied, BaseCycles: 2, Length: 1}

var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() map[uint8]Instruction {
	t := map[uint8]Instruction{}
	add := func(op uint8, m Mnemonic, mode AddressingMode, cycles, length uint8) {
		t[op] = Instruction{Opcode: op, Mnemonic: m, Mode: mode, BaseCycles: cycles, Length: length}
	}

	// ADC
	add(0x69, ADC, Immediate, 2, 2)
	add(0x65, ADC, ZeroPage, 3, 2)
	add(0x75, ADC, ZeroPageX, 4, 2)
	add(0x6D, ADC, Absolute, 4, 3)
	add(0x7D, ADC, AbsoluteX, 4, 3) // +1 page cross
	add(0x79, ADC, AbsoluteY, 4, 3) // +1 page cross
	add(0x61, ADC, IndirectX, 6, 2)
	add(0x71, ADC, IndirectY, 5, 2) // +1 page cross

	// SBC mirrors ADC.
	add(0xE9, SBC, Immediate, 2, 2)
	add(0xE5, SBC, ZeroPage, 3, 2)
	add(0xF5, SBC, ZeroPageX, 4, 2)
	add(0xED, SBC, Absolute, 4, 3)
	add(0xFD, SBC, AbsoluteX, 4, 3)
	add(0xF9, SBC, AbsoluteY, 4, 3)
	add(0xE1, SBC, IndirectX, 6, 2)
	add(0xF1, SBC, IndirectY, 5, 2)

	// AND
	add(0x29, AND, Immediate, 2, 2)
	add(0x25, AND, ZeroPage, 3, 2)
	add(0x35, AND, ZeroPageX, 4, 2)
	add(0x2D, AND, Absolute, 4, 3)
	add(0x3D, AND, AbsoluteX, 4, 3)
	add(0x39, AND, AbsoluteY, 4, 3)
	add(0x21, AND, IndirectX, 6, 2)
	add(0x31, AND, IndirectY, 5, 2)

	// ORA
	add(0x09, ORA, Immediate, 2, 2)
	add(0x05, ORA, ZeroPage, 3, 2)
	add(0x15, ORA, ZeroPageX, 4, 2)
	add(0x0D, ORA, Absolute, 4, 3)
	add(0x1D, ORA, AbsoluteX, 4, 3)
	add(0x19, ORA, AbsoluteY, 4, 3)
	add(0x01, ORA, IndirectX, 6, 2)
	add(0x11, ORA, IndirectY, 5, 2)

	// EOR
	add(0x49, EOR, Immediate, 2, 2)
	add(0x45, EOR, ZeroPage, 3, 2)
	add(0x55, EOR, ZeroPageX, 4, 2)
	add(0x4D, EOR, Absolute, 4, 3)
	add(0x5D, EOR, AbsoluteX, 4, 3)
	add(0x59, EOR, AbsoluteY, 4, 3)
	add(0x41, EOR, IndirectX, 6, 2)
	add(0x51, EOR, IndirectY, 5, 2)

	// CMP
	add(0xC9, CMP, Immediate, 2, 2)
	add(0xC5, CMP, ZeroPage, 3, 2)
	add(0xD5, CMP, ZeroPageX, 4, 2)
	add(0xCD, CMP, Absolute, 4, 3)
	add(0xDD, CMP, AbsoluteX, 4, 3)
	add(0xD9, CMP, AbsoluteY, 4, 3)
	add(0xC1, CMP, IndirectX, 6, 2)
	add(0xD1, CMP, IndirectY, 5, 2)

	// CPX/CPY
	add(0xE0, CPX, Immediate, 2, 2)
	add(0xE4, CPX, ZeroPage, 3, 2)
	add(0xEC, CPX, Absolute, 4, 3)
	add(0xC0, CPY, Immediate, 2, 2)
	add(0xC4, CPY, ZeroPage, 3, 2)
	add(0xCC, CPY, Absolute, 4, 3)

	// LDA/LDX/LDY
	add(0xA9, LDA, Immediate, 2, 2)
	add(0xA5, LDA, ZeroPage, 3, 2)
	add(0xB5, LDA, ZeroPageX, 4, 2)
	add(0xAD, LDA, Absolute, 4, 3)
	add(0xBD, LDA, AbsoluteX, 4, 3)
	add(0xB9, LDA, AbsoluteY, 4, 3)
	add(0xA1, LDA, IndirectX, 6, 2)
	add(0xB1, LDA, IndirectY, 5, 2)

	add(0xA2, LDX, Immediate, 2, 2)
	add(0xA6, LDX, ZeroPage, 3, 2)
	add(0xB6, LDX, ZeroPageY, 4, 2)
	add(0xAE, LDX, Absolute, 4, 3)
	add(0xBE, LDX, AbsoluteY, 4, 3)

	add(0xA0, LDY, Immediate, 2, 2)
	add(0xA4, LDY, ZeroPage, 3, 2)
	add(0xB4, LDY, ZeroPageX, 4, 2)
	add(0xAC, LDY, Absolute, 4, 3)
	add(0xBC, LDY, AbsoluteX, 4, 3)

	// STA/STX/STY (no page-cross penalty: always the worst case).
	add(0x85, STA, ZeroPage, 3, 2)
	add(0x95, STA, ZeroPageX, 4, 2)
	add(0x8D, STA, Absolute, 4, 3)
	add(0x9D, STA, AbsoluteX, 5, 3)
	add(0x99, STA, AbsoluteY, 5, 3)
	add(0x81, STA, IndirectX, 6, 2)
	add(0x91, STA, IndirectY, 6, 2)

	add(0x86, STX, ZeroPage, 3, 2)
	add(0x96, STX, ZeroPageY, 4, 2)
	add(0x8E, STX, Absolute, 4, 3)

	add(0x84, STY, ZeroPage, 3, 2)
	add(0x94, STY, ZeroPageX, 4, 2)
	add(0x8C, STY, Absolute, 4, 3)

	// INC/DEC
	add(0xE6, INC, ZeroPage, 5, 2)
	add(0xF6, INC, ZeroPageX, 6, 2)
	add(0xEE, INC, Absolute, 6, 3)
	add(0xFE, INC, AbsoluteX, 7, 3)

	add(0xC6, DEC, ZeroPage, 5, 2)
	add(0xD6, DEC, ZeroPageX, 6, 2)
	add(0xCE, DEC, Absolute, 6, 3)
	add(0xDE, DEC, AbsoluteX, 7, 3)

	add(0xE8, INX, Implied, 2, 1)
	add(0xC8, INY, Implied, 2, 1)
	add(0xCA, DEX, Implied, 2, 1)
	add(0x88, DEY, Implied, 2, 1)

	// ASL/LSR/ROL/ROR
	add(0x0A, ASL, Accumulator, 2, 1)
	add(0x06, ASL, ZeroPage, 5, 2)
	add(0x16, ASL, ZeroPageX, 6, 2)
	add(0x0E, ASL, Absolute, 6, 3)
	add(0x1E, ASL, AbsoluteX, 7, 3)

	add(0x4A, LSR, Accumulator, 2, 1)
	add(0x46, LSR, ZeroPage, 5, 2)
	add(0x56, LSR, ZeroPageX, 6, 2)
	add(0x4E, LSR, Absolute, 6, 3)
	add(0x5E, LSR, AbsoluteX, 7, 3)

	add(0x2A, ROL, Accumulator, 2, 1)
	add(0x26, ROL, ZeroPage, 5, 2)
	add(0x36, ROL, ZeroPageX, 6, 2)
	add(0x2E, ROL, Absolute, 6, 3)
	add(0x3E, ROL, AbsoluteX, 7, 3)

	add(0x6A, ROR, Accumulator, 2, 1)
	add(0x66, ROR, ZeroPage, 5, 2)
	add(0x76, ROR, ZeroPageX, 6, 2)
	add(0x6E, ROR, Absolute, 6, 3)
	add(0x7E, ROR, AbsoluteX, 7, 3)

	// BIT
	add(0x24, BIT, ZeroPage, 3, 2)
	add(0x2C, BIT, Absolute, 4, 3)

	// Branches: base 2 cycles, +1 taken, +1 more on page cross.
	add(0x10, BPL, Relative, 2, 2)
	add(0x30, BMI, Relative, 2, 2)
	add(0x50, BVC, Relative, 2, 2)
	add(0x70, BVS, Relative, 2, 2)
	add(0x90, BCC, Relative, 2, 2)
	add(0xB0, BCS, Relative, 2, 2)
	add(0xD0, BNE, Relative, 2, 2)
	add(0xF0, BEQ, Relative, 2, 2)

	// Flag ops
	add(0x18, CLC, Implied, 2, 1)
	add(0x38, SEC, Implied, 2, 1)
	add(0x58, CLI, Implied, 2, 1)
	add(0x78, SEI, Implied, 2, 1)
	add(0xB8, CLV, Implied, 2, 1)
	add(0xD8, CLD, Implied, 2, 1)
	add(0xF8, SED, Implied, 2, 1)

	// Transfers
	add(0xAA, TAX, Implied, 2, 1)
	add(0x8A, TXA, Implied, 2, 1)
	add(0xA8, TAY, Implied, 2, 1)
	add(0x98, TYA, Implied, 2, 1)
	add(0xBA, TSX, Implied, 2, 1)
	add(0x9A, TXS, Implied, 2, 1)

	// Stack
	add(0x48, PHA, Implied, 3, 1)
	add(0x68, PLA, Implied, 4, 1)
	add(0x08, PHP, Implied, 3, 1)
	add(0x28, PLP, Implied, 4, 1)

	// Control
	add(0x4C, JMP, Absolute, 3, 3)
	add(0x6C, JMP, Indirect, 5, 3)
	add(0x20, JSR, Absolute, 6, 3)
	add(0x60, RTS, Implied, 6, 1)
	add(0x40, RTI, Implied, 6, 1)
	add(0x00, BRK, Implied, 7, 1)
	add(0xEA, NOP, Implied, 2, 1)

	return t
}

// Lookup returns the decoded instruction for opcode, and false if the byte
// has no defined 6502 behavior (in which case the returned Instruction is
// the illegal-opcode fallback: NOP, 1 byte, 2 cycles).
func Lookup(opcode uint8) (Instruction, bool) {
	inst, ok := opcodeTable[opcode]
	if !ok {
		return illegalOpcode, false
	}
	return inst, true
}
