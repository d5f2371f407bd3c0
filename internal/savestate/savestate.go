// Package savestate encodes and decodes a CPU's architectural state
// (the registers and flags from cpu.CPU) plus an arbitrary RAM snapshot
// into a fixed-layout byte buffer, the way the teacher's own
// read16/write16 helpers treat the 6502 address space: little-endian,
// no third-party serialization library appears anywhere in the
// retrieval pack for this kind of fixed binary record, so
// encoding/binary is used directly rather than introducing one.
package savestate

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hwalbrandt/nescpu/cpu"
)

// magic identifies the format and lets Decode reject garbage input early.
const magic = uint32(0x4E455343) // "NESC"

// State is the save-state record: the six architectural register fields
// of cpu.CPU (A, X, Y, SP, P, PC) plus a RAM snapshot sized by the caller
// (64KiB for a flat RAM bus, 2KiB for an NESBus's internal RAM). The CPU's
// remaining-cycle count and its addressing scratch values are not captured.
type State struct {
	A, X, Y uint8
	SP      uint8
	P       uint8
	PC      uint16
	RAM     []byte
}

// FromCPU captures c's architectural state plus ram into a State.
func FromCPU(c *cpu.CPU, ram []byte) State {
	return State{A: c.A, X: c.X, Y: c.Y, SP: c.SP, P: c.P, PC: c.PC, RAM: append([]byte(nil), ram...)}
}

// Apply writes s's register fields back onto c. RAM restoration is the
// caller's responsibility since the Bus implementation (flat RAM vs.
// NESBus) isn't known to this package.
func (s State) Apply(c *cpu.CPU) {
	c.A, c.X, c.Y = s.A, s.X, s.Y
	c.SP = s.SP
	c.P = s.P
	c.PC = s.PC
}

// Encode writes s as a fixed-layout little-endian record: magic, the
// six register fields (PC as a uint16), a uint32 RAM length, then the RAM
// bytes.
func Encode(s State) ([]byte, error) {
	var buf bytes.Buffer
	fields := []any{magic, s.A, s.X, s.Y, s.SP, s.P, s.PC, uint32(len(s.RAM))}
	for _, f := range fields {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			return nil, fmt.Errorf("savestate: encoding header: %w", err)
		}
	}
	buf.Write(s.RAM)
	return buf.Bytes(), nil
}

// Decode parses a buffer produced by Encode.
func Decode(data []byte) (State, error) {
	r := bytes.NewReader(data)

	var gotMagic uint32
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil {
		return State{}, fmt.Errorf("savestate: reading magic: %w", err)
	}
	if gotMagic != magic {
		return State{}, fmt.Errorf("savestate: bad magic %#x, want %#x", gotMagic, magic)
	}

	var s State
	for _, f := range []any{&s.A, &s.X, &s.Y, &s.SP, &s.P, &s.PC} {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return State{}, fmt.Errorf("savestate: reading register field: %w", err)
		}
	}

	var ramLen uint32
	if err := binary.Read(r, binary.LittleEndian, &ramLen); err != nil {
		return State{}, fmt.Errorf("savestate: reading RAM length: %w", err)
	}

	s.RAM = make([]byte, ramLen)
	if _, err := io.ReadFull(r, s.RAM); err != nil {
		return State{}, fmt.Errorf("savestate: reading RAM: %w", err)
	}

	return s, nil
}
