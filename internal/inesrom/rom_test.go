package inesrom

import (
	"bytes"
	"testing"
)

func buildImage(prgBlocks, chrBlocks uint8, trainer bool) []byte {
	flags6 := uint8(0)
	if trainer {
		flags6 |= flagTrainer
	}
	h := []byte{'N', 'E', 'S', 0x1A, prgBlocks, chrBlocks, flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	var buf bytes.Buffer
	buf.Write(h)
	if trainer {
		buf.Write(make([]byte, trainerSize))
	}
	buf.Write(make([]byte, prgBlockSize*int(prgBlocks)))
	buf.Write(make([]byte, chrBlockSize*int(chrBlocks)))
	return buf.Bytes()
}

func TestParseRoundTrip(t *testing.T) {
	img := buildImage(2, 1, false)
	rom, err := Parse(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rom.PRG()) != 2*prgBlockSize {
		t.Errorf("PRG size = %d, want %d", len(rom.PRG()), 2*prgBlockSize)
	}
	if len(rom.CHR()) != chrBlockSize {
		t.Errorf("CHR size = %d, want %d", len(rom.CHR()), chrBlockSize)
	}
	if rom.NumPrgBlocks() != 2 {
		t.Errorf("NumPrgBlocks() = %d, want 2", rom.NumPrgBlocks())
	}
}

func TestParseWithTrainer(t *testing.T) {
	img := buildImage(1, 1, true)
	rom, err := Parse(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rom.trainer) != trainerSize {
		t.Errorf("trainer size = %d, want %d", len(rom.trainer), trainerSize)
	}
}

func TestParseTruncatedHeader(t *testing.T) {
	if _, err := Parse(bytes.NewReader([]byte{'N', 'E', 'S'})); err == nil {
		t.Error("expected error for truncated header")
	}
}

func TestParseTruncatedPRG(t *testing.T) {
	img := buildImage(2, 0, false)
	img = img[:len(img)-10] // truncate PRG data
	if _, err := Parse(bytes.NewReader(img)); err == nil {
		t.Error("expected error for truncated PRG data")
	}
}
