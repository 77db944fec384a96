package fit

import (
	"encoding/binary"
	"io"
)

// Header byte offsets. The size byte at offset 0 selects the 12-byte or
// 14-byte layout; the optional trailing CRC is only present in the latter.
const (
	headerSizeOffset            = 0
	headerProtocolVersionOffset = 1
	headerProfileVersionOffset  = 2
	headerDataSizeOffset        = 4
	headerDataTypeOffset        = 8
	headerCRCOffset             = 12

	headerSizeMin      = 12
	headerSizeWithCRC  = 14
	headerDataTypeSize = 4
)

// headerMagic is the fixed ".FIT" signature at offset 8.
var headerMagic = [headerDataTypeSize]byte{'.', 'F', 'I', 'T'}

// Header is the parsed file header. It keeps the raw bytes so callers can
// re-examine them; the accessors decode the interesting fields.
type Header struct {
	raw [headerSizeWithCRC]byte
	len int
}

// ReadHeader reads the 12-or-14-byte file header from r. A short read is
// fatal for the whole decode and surfaces as ErrTruncatedInput.
func ReadHeader(r io.Reader) (*Header, error) {
	h := &Header{}

	if _, err := io.ReadFull(r, h.raw[:headerSizeMin]); err != nil {
		return nil, ErrTruncatedInput
	}
	h.len = headerSizeMin

	// The newer header carries two extra CRC bytes.
	if h.raw[headerSizeOffset] == headerSizeWithCRC {
		if _, err := io.ReadFull(r, h.raw[headerCRCOffset:headerSizeWithCRC]); err != nil {
			return nil, ErrTruncatedInput
		}
		h.len = headerSizeWithCRC
	}

	return h, nil
}

// Validate reports whether the header carries the ".FIT" signature. Callers
// must not trust DataSize before checking this.
func (h *Header) Validate() bool {
	return [headerDataTypeSize]byte(h.raw[headerDataTypeOffset:headerDataTypeOffset+headerDataTypeSize]) == headerMagic
}

// Len returns the header length in bytes (12 or 14).
func (h *Header) Len() int {
	return h.len
}

// ProtocolVersion returns the protocol version byte.
func (h *Header) ProtocolVersion() byte {
	return h.raw[headerProtocolVersionOffset]
}

// ProfileVersion returns the profile version.
func (h *Header) ProfileVersion() uint16 {
	return binary.LittleEndian.Uint16(h.raw[headerProfileVersionOffset:])
}

// DataSize returns the declared number of bytes following the header. The
// two-byte checksum trailer is counted in this figure.
func (h *Header) DataSize() uint32 {
	return binary.LittleEndian.Uint32(h.raw[headerDataSizeOffset:])
}

// CRC returns the header CRC for the 14-byte layout and zero otherwise.
func (h *Header) CRC() uint16 {
	if h.len < headerSizeWithCRC {
		return 0
	}
	return binary.LittleEndian.Uint16(h.raw[headerCRCOffset:])
}
