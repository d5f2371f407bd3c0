// Package disasm formats cpu.Disassemble output into nestest-style
// trace lines, the format the retrieval pack's jmchacon/6502
// disassembler and NES test ROMs both use.
package disasm

import (
	"fmt"
	"strings"

	"github.com/hwalbrandt/nescpu/cpu"
)

// Line renders the instruction at pc as a single disassembly line:
// address, raw bytes, mnemonic and operand. It never mutates CPU or bus
// state; bus is only read.
func Line(bus cpu.Bus, pc uint16) string {
	mnemonic, mode, raw := cpu.Disassemble(bus, pc)

	var hex strings.Builder
	for _, b := range raw {
		fmt.Fprintf(&hex, "%02X ", b)
	}

	return fmt.Sprintf("%04X  %-9s%s", pc, hex.String(), operandText(mnemonic, mode, raw, pc))
}

func operandText(mnemonic string, mode cpu.AddressingMode, raw []byte, pc uint16) string {
	switch mode {
	case cpu.Implied:
		return mnemonic
	case cpu.Accumulator:
		return fmt.Sprintf("%s A", mnemonic)
	case cpu.Immediate:
		return fmt.Sprintf("%s #$%02X", mnemonic, raw[1])
	case cpu.ZeroPage:
		return fmt.Sprintf("%s $%02X", mnemonic, raw[1])
	case cpu.ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", mnemonic, raw[1])
	case cpu.ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", mnemonic, raw[1])
	case cpu.Absolute:
		return fmt.Sprintf("%s $%02X%02X", mnemonic, raw[2], raw[1])
	case cpu.AbsoluteX:
		return fmt.Sprintf("%s $%02X%02X,X", mnemonic, raw[2], raw[1])
	case cpu.AbsoluteY:
		return fmt.Sprintf("%s $%02X%02X,Y", mnemonic, raw[2], raw[1])
	case cpu.Indirect:
		return fmt.Sprintf("%s ($%02X%02X)", mnemonic, raw[2], raw[1])
	case cpu.IndirectX:
		return fmt.Sprintf("%s ($%02X,X)", mnemonic, raw[1])
	case cpu.IndirectY:
		return fmt.Sprintf("%s ($%02X),Y", mnemonic, raw[1])
	case cpu.Relative:
		target := uint16(int32(pc) + 2 + int32(int8(raw[1])))
		return fmt.Sprintf("%s $%04X", mnemonic, target)
	default:
		return mnemonic
	}
}
