// Package bus provides Bus implementations the cpu package can drive:
// a flat RAM bus for tests and raw binaries, and an NESBus that applies
// the NES CPU memory map (2KiB internal RAM mirrored through $1FFF, 8
// PPU registers mirrored through $3FFF, and cartridge space from
// $4020 up) on top of a Cartridge.
package bus

// RAM is the simplest possible Bus: a flat 64KiB array with no mirroring
// or mapping. It backs the "run a raw binary" path in cmd/nescpu and the
// cpu package's own tests.
type RAM struct {
	mem [65536]uint8
}

func NewRAM() *RAM { return &RAM{} }

func (r *RAM) Read(addr uint16) uint8     { return r.mem[addr] }
func (r *RAM) Write(addr uint16, v uint8) { r.mem[addr] = v }

// Load copies prog into memory starting at addr. It's a convenience for
// hosts that just want to drop a flat binary somewhere in the address
// space, mirroring how the teacher's cmd line wired a raw PRG image in
// at $C000.
func (r *RAM) Load(addr uint16, prog []uint8) {
	for i, b := range prog {
		r.mem[addr+uint16(i)] = b
	}
}

// SetResetVector points $FFFC/$FFFD at addr.
func (r *RAM) SetResetVector(addr uint16) {
	r.mem[0xFFFC] = uint8(addr)
	r.mem[0xFFFD] = uint8(addr >> 8)
}
