package inesrom

import "testing"

func TestParseHeader(t *testing.T) {
	b := []byte{0x4e, 0x45, 0x53, 0x1a, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	h, err := parseHeader(b)
	if err != nil {
		t.Fatalf("parseHeader: %v", err)
	}
	if h.magic != "NES\x1A" || h.prgSize != 2 || h.chrSize != 1 || h.flags6 != 1 {
		t.Errorf("parseHeader = %+v", h)
	}
}

func TestParseHeaderTooShort(t *testing.T) {
	if _, err := parseHeader([]byte{0x4e, 0x45, 0x53}); err == nil {
		t.Error("expected error for short header")
	}
}

func TestMapperNum(t *testing.T) {
	cases := []struct {
		flags6, flags7 uint8
		unused         []byte
		want           uint16
	}{
		{0xEF, 0xF0, []byte{0, 0, 0, 0, 0}, 0xFE}, // not NES2, trailing bytes zero
		{0xC0, 0xB0, []byte{0, 1, 1, 1, 0}, 0x0C}, // not NES2, trailing bytes non-zero
		{0xAF, 0xD8, []byte{0, 0, 0, 0, 0}, 0xDA}, // NES2, trailing bytes zero
	}

	for i, tc := range cases {
		h := &header{magic: "NES\x1A", flags6: tc.flags6, flags7: tc.flags7, unused: tc.unused}
		if got := h.mapperNum(); got != tc.want {
			t.Errorf("%d: mapperNum() = %#x, want %#x", i, got, tc.want)
		}
	}
}

func TestHasTrainer(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   bool
	}{
		{0xFF, true},
		{0x04, true},
		{0x0A, false},
	}
	for i, tc := range cases {
		h := &header{flags6: tc.flags6}
		if got := h.hasTrainer(); got != tc.want {
			t.Errorf("%d: hasTrainer() = %t, want %t", i, got, tc.want)
		}
	}
}

func TestMirroringMode(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   uint8
	}{
		{0x00, MirrorHorizontal},
		{0x01, MirrorVertical},
		{0x08, MirrorFourScreen},
		{0x09, MirrorFourScreen},
	}
	for i, tc := range cases {
		h := &header{flags6: tc.flags6}
		if got := h.mirroringMode(); got != tc.want {
			t.Errorf("%d: mirroringMode() = %d, want %d", i, got, tc.want)
		}
	}
}

func TestBatteryBackedSRAM(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   bool
	}{
		{0, false},
		{flagBatteryRAM, true},
	}
	for i, tc := range cases {
		h := &header{flags6: tc.flags6}
		if got := h.hasPrgRAM(); got != tc.want {
			t.Errorf("%d: hasPrgRAM() = %t, want %t", i, got, tc.want)
		}
	}
}
