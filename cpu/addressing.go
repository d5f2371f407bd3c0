package cpu

// evalAddress implements C2: given the addressing mode of the instruction
// currently being dispatched, it reads the 0-2 operand bytes from bus
// starting at PC, advances PC past them, and sets c.effectiveAddr (or
// c.branchOffset for Relative). It returns whether a page-crossing penalty
// applies for this mode; Implied/Accumulator never do, and the executor
// ignores the flag entirely for read-modify-write and store instructions.
func (c *CPU) evalAddress(bus Bus, mode AddressingMode) bool {
	switch mode {
	case Implied, Accumulator:
		return false

	case Immediate:
		c.effectiveAddr = c.PC
		c.PC++
		return false

	case ZeroPage:
		c.effectiveAddr = uint16(bus.Read(c.PC))
		c.PC++
		return false

	case ZeroPageX:
		d := bus.Read(c.PC)
		c.PC++
		c.effectiveAddr = uint16(d + c.X)
		return false

	case ZeroPageY:
		d := bus.Read(c.PC)
		c.PC++
		c.effectiveAddr = uint16(d + c.Y)
		return false

	case Absolute:
		c.effectiveAddr = c.read16(bus, c.PC)
		c.PC += 2
		return false

	case AbsoluteX:
		base := c.read16(bus, c.PC)
		c.PC += 2
		c.effectiveAddr = base + uint16(c.X)
		return pageCrossed(base, c.effectiveAddr)

	case AbsoluteY:
		base := c.read16(bus, c.PC)
		c.PC += 2
		c.effectiveAddr = base + uint16(c.Y)
		return pageCrossed(base, c.effectiveAddr)

	case Indirect:
		ptr := c.read16(bus, c.PC)
		c.PC += 2
		c.effectiveAddr = c.indirectRead16BugCompat(bus, ptr)
		return false

	case IndirectX:
		d := bus.Read(c.PC)
		c.PC++
		p := uint16(d + c.X)
		lo := uint16(bus.Read(p))
		hi := uint16(bus.Read(uint16(uint8(p) + 1)))
		c.effectiveAddr = hi<<8 | lo
		return false

	case IndirectY:
		d := bus.Read(c.PC)
		c.PC++
		lo := uint16(bus.Read(uint16(d)))
		hi := uint16(bus.Read(uint16(d + 1)))
		base := hi<<8 | lo
		c.effectiveAddr = base + uint16(c.Y)
		return pageCrossed(base, c.effectiveAddr)

	case Relative:
		d := bus.Read(c.PC)
		c.PC++
		c.branchOffset = int16(int8(d))
		return false
	}

	return false
}

// indirectRead16BugCompat reproduces the JMP-indirect page-wrap bug: when
// ptr's low byte is 0xFF, the high byte of the target is read from the same
// page (ptr & 0xFF00) instead of the next one.
func (c *CPU) indirectRead16BugCompat(bus Bus, ptr uint16) uint16 {
	lo := uint16(bus.Read(ptr))
	hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
	hi := uint16(bus.Read(hiAddr))
	return hi<<8 | lo
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
