package bus

// Cartridge is the adapted form of the teacher's mappers.Mapper
// interface, trimmed to the PRG-space concerns the CPU bus actually
// needs: CHR/VRAM access belonged to the PPU, which is out of scope for
// this CORE (see SPEC_FULL.md §1).
type Cartridge interface {
	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, val uint8)
}

// NROM is the teacher's mapper0 adapted to the Cartridge interface: PRG
// ROM is exposed directly at $8000-$FFFF, mirrored down into a single
// 16KiB bank when the cartridge only has one.
type NROM struct {
	prg []uint8
}

// NewNROM wraps prg (the PRG ROM bank(s) from an iNES file) as a
// Cartridge. A single 16KiB bank is mirrored into both halves of
// $8000-$FFFF, matching real NROM-128 hardware.
func NewNROM(prg []uint8) *NROM {
	return &NROM{prg: prg}
}

func (m *NROM) PrgRead(addr uint16) uint8 {
	offset := int(addr-0x8000) % len(m.prg)
	return m.prg[offset]
}

// PrgWrite is a no-op: NROM carries no PRG RAM or bank-select registers.
func (m *NROM) PrgWrite(addr uint16, val uint8) {}
