package bus

import "testing"

func TestRAMMirroring(t *testing.T) {
	b := NewNESBus(nil)

	for i := 0; i < 10; i++ {
		b.Write(uint16(i), uint8(i+1))
	}

	for _, base := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		for i := 0; i < 10; i++ {
			if got := b.Read(base + uint16(i)); got != uint8(i+1) {
				t.Errorf("mem[%04x] = %02x, wanted %02x", base+uint16(i), got, i+1)
			}
		}
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	b := NewNESBus(nil)

	for i := uint16(0); i < 8; i++ {
		b.Write(0x2000+i, uint8(i+1))
	}

	for _, base := range []uint16{0x2000, 0x2008, 0x3FF8} {
		for i := uint16(0); i < 8; i++ {
			if got := b.Read(base + i); got != uint8(i+1) {
				t.Errorf("ppu reg[%04x] = %02x, wanted %02x", base+i, got, i+1)
			}
		}
	}
}

func TestCartridgeSpaceWithNoCartridge(t *testing.T) {
	b := NewNESBus(nil)
	if got := b.Read(0x8000); got != 0 {
		t.Errorf("Read(0x8000) = %02x, wanted 0", got)
	}
	b.Write(0x8000, 0x42) // must not panic
}

func TestNROMMirrorsSingleBank(t *testing.T) {
	prg := make([]uint8, 0x4000) // 16KiB single bank
	prg[0] = 0xEA
	prg[0x3FFF] = 0x60

	cart := NewNROM(prg)
	b := NewNESBus(cart)

	if got := b.Read(0x8000); got != 0xEA {
		t.Errorf("Read(0x8000) = %02x, wanted 0xEA", got)
	}
	if got := b.Read(0xC000); got != 0xEA {
		t.Errorf("Read(0xC000) = %02x, wanted 0xEA (bank mirrored)", got)
	}
	if got := b.Read(0xFFFF); got != 0x60 {
		t.Errorf("Read(0xFFFF) = %02x, wanted 0x60", got)
	}
}
