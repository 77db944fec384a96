package fit

import (
	"bytes"
	"testing"
)

func buildHeader(size byte, dataSize uint32, magic string) []byte {
	h := []byte{
		size,
		0x20,       // protocol version
		0x5e, 0x08, // profile version 2142
		byte(dataSize), byte(dataSize >> 8), byte(dataSize >> 16), byte(dataSize >> 24),
	}
	h = append(h, magic...)
	if size == 14 {
		h = append(h, 0x00, 0x00)
	}
	return h
}

func TestReadHeader_Variants(t *testing.T) {
	testCases := []struct {
		name     string
		raw      []byte
		wantLen  int
		wantSize uint32
	}{
		{
			name:     "legacy 12 byte header",
			raw:      buildHeader(12, 0x04030201, ".FIT"),
			wantLen:  12,
			wantSize: 0x04030201,
		},
		{
			name:     "14 byte header with crc",
			raw:      buildHeader(14, 1000, ".FIT"),
			wantLen:  14,
			wantSize: 1000,
		},
		{
			name:     "zero data size",
			raw:      buildHeader(14, 0, ".FIT"),
			wantLen:  14,
			wantSize: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := ReadHeader(bytes.NewReader(tc.raw))
			if err != nil {
				t.Fatalf("ReadHeader failed: %v", err)
			}
			if !h.Validate() {
				t.Fatal("Validate returned false for a valid header")
			}
			if h.Len() != tc.wantLen {
				t.Errorf("Len mismatch: got %d, want %d", h.Len(), tc.wantLen)
			}
			if h.DataSize() != tc.wantSize {
				t.Errorf("DataSize mismatch: got %d, want %d", h.DataSize(), tc.wantSize)
			}
			if h.ProtocolVersion() != 0x20 {
				t.Errorf("ProtocolVersion mismatch: got %#x, want 0x20", h.ProtocolVersion())
			}
			if h.ProfileVersion() != 2142 {
				t.Errorf("ProfileVersion mismatch: got %d, want 2142", h.ProfileVersion())
			}
		})
	}
}

func TestReadHeader_BadMagic(t *testing.T) {
	h, err := ReadHeader(bytes.NewReader(buildHeader(14, 100, "GARB")))
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}
	if h.Validate() {
		t.Error("Validate accepted a header without the .FIT signature")
	}
}

func TestReadHeader_Truncated(t *testing.T) {
	testCases := []struct {
		name string
		raw  []byte
	}{
		{name: "empty input", raw: nil},
		{name: "partial fixed header", raw: buildHeader(12, 10, ".FIT")[:7]},
		{name: "missing crc bytes", raw: buildHeader(14, 10, ".FIT")[:13]},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadHeader(bytes.NewReader(tc.raw)); err != ErrTruncatedInput {
				t.Errorf("expected ErrTruncatedInput, got %v", err)
			}
		})
	}
}

func TestHeader_CRC(t *testing.T) {
	raw := buildHeader(14, 10, ".FIT")
	raw[12], raw[13] = 0x34, 0x12
	h, err := ReadHeader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}
	if h.CRC() != 0x1234 {
		t.Errorf("CRC mismatch: got %#x, want 0x1234", h.CRC())
	}

	legacy, err := ReadHeader(bytes.NewReader(buildHeader(12, 10, ".FIT")))
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}
	if legacy.CRC() != 0 {
		t.Errorf("legacy header CRC should be 0, got %#x", legacy.CRC())
	}
}
