package bus

// Internal RAM is 2KiB, mirrored four times through $0000-$1FFF. The PPU
// exposes 8 registers, mirrored through $2000-$3FFF. Both masks are the
// correct NESDev ones; the teacher's own masks (index & 0x8 for PPU regs)
// only ever touch two of the eight registers and are not reproduced here
// (see SPEC_FULL.md §9's Open Questions).
const (
	internalRAMSize = 0x0800
	ramMirrorMask   = internalRAMSize - 1 // 0x07FF
	ppuRegMask      = 0x0007
	ppuRegBase      = 0x2000
	ppuRegTop       = 0x4000
	cartridgeBase   = 0x4020
)

// NESBus implements the NES CPU memory map: mirrored internal RAM,
// mirrored PPU registers (backed by a stub register file since the PPU
// itself is out of scope for this CORE), and cartridge PRG space from
// $4020 up via a Cartridge.
//
// Addresses $4000-$401F (APU and I/O registers) are backed by a small
// open-bus-style register file; nothing in this CORE interprets them.
type NESBus struct {
	ram       [internalRAMSize]uint8
	ppuRegs   [8]uint8
	apuRegs   [0x20]uint8
	cartridge Cartridge
}

// NewNESBus constructs a bus over cart. cart may be nil, in which case
// cartridge-space reads return 0 and writes are discarded; this is
// convenient for tests that only exercise RAM/PPU-register mirroring.
func NewNESBus(cart Cartridge) *NESBus {
	return &NESBus{cartridge: cart}
}

func (b *NESBus) Read(addr uint16) uint8 {
	switch {
	case addr < ppuRegBase:
		return b.ram[addr&ramMirrorMask]
	case addr < ppuRegTop:
		return b.ppuRegs[(addr-ppuRegBase)&ppuRegMask]
	case addr < cartridgeBase:
		return b.apuRegs[addr-ppuRegTop]
	default:
		if b.cartridge == nil {
			return 0
		}
		return b.cartridge.PrgRead(addr)
	}
}

func (b *NESBus) Write(addr uint16, val uint8) {
	switch {
	case addr < ppuRegBase:
		b.ram[addr&ramMirrorMask] = val
	case addr < ppuRegTop:
		b.ppuRegs[(addr-ppuRegBase)&ppuRegMask] = val
	case addr < cartridgeBase:
		b.apuRegs[addr-ppuRegTop] = val
	default:
		if b.cartridge != nil {
			b.cartridge.PrgWrite(addr, val)
		}
	}
}
