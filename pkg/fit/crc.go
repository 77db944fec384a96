package fit

// crcTable is the 16-entry nibble table for the CRC-16 variant used by the
// file trailer. The values are fixed by the format; downstream tooling that
// does check the trailer expects exactly this polynomial.
var crcTable = [16]uint16{
	0x0000, 0xCC01, 0xD801, 0x1400, 0xF001, 0x3C00, 0x2800, 0xE401,
	0xA001, 0x6C00, 0x7800, 0xB401, 0x5000, 0x9C01, 0x8801, 0x4400,
}

// crc16Byte folds one byte into the running checksum, low nibble first.
func crc16Byte(crc uint16, b byte) uint16 {
	tmp := crcTable[crc&0xf]
	crc = (crc >> 4) & 0x0fff
	crc = crc ^ tmp ^ crcTable[b&0xf]

	tmp = crcTable[crc&0xf]
	crc = (crc >> 4) & 0x0fff
	crc = crc ^ tmp ^ crcTable[(b>>4)&0xf]

	return crc
}

// crc16Update folds a byte slice into the running checksum.
func crc16Update(crc uint16, p []byte) uint16 {
	for _, b := range p {
		crc = crc16Byte(crc, b)
	}
	return crc
}

// CRC16 computes the file checksum of p from a zero seed.
func CRC16(p []byte) uint16 {
	return crc16Update(0, p)
}
