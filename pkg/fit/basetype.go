package fit

import (
	"math"
	"strings"
)

// Base type tags from the SDK. The high bit marks types that define an
// invalid-value sentinel; it does not change how the bytes are decoded.
const (
	BaseTypeEnum    byte = 0x00
	BaseTypeSint8   byte = 0x01
	BaseTypeUint8   byte = 0x02
	BaseTypeSint16  byte = 0x83
	BaseTypeUint16  byte = 0x84
	BaseTypeSint32  byte = 0x85
	BaseTypeUint32  byte = 0x86
	BaseTypeString  byte = 0x07
	BaseTypeFloat32 byte = 0x88
	BaseTypeFloat64 byte = 0x89
	BaseTypeUint8z  byte = 0x0A
	BaseTypeUint16z byte = 0x8B
	BaseTypeUint32z byte = 0x8C
	BaseTypeByte    byte = 0x0D
	BaseTypeSint64  byte = 0x8E
	BaseTypeUint64  byte = 0x8F
	BaseTypeUint64z byte = 0x90
)

// decodeUint assembles an unsigned integer from the leading width bytes of
// data. Big-endian puts byte 0 in the most significant position.
func decodeUint(data []byte, width int, bigEndian bool) uint64 {
	var num uint64
	if bigEndian {
		for i := 0; i < width; i++ {
			num = num<<8 | uint64(data[i])
		}
	} else {
		for i := 0; i < width; i++ {
			num = num<<8 | uint64(data[width-i-1])
		}
	}
	return num
}

// decodeValue converts the raw bytes of one field into a FieldValue according
// to the field's declared base type. Fixed-width numeric types convert their
// implied width from the front of data; string and byte fields use the
// declared size verbatim. An unrecognized tag is a hard error: consuming the
// wrong number of bytes here would desynchronize every later record.
func decodeValue(def FieldDefinition, data []byte, bigEndian bool) (FieldValue, error) {
	v := FieldValue{
		FieldNum:       def.Num,
		BaseType:       def.BaseType,
		DeveloperField: def.DeveloperField,
	}

	width := 0
	switch def.BaseType {
	case BaseTypeEnum, BaseTypeUint8, BaseTypeUint8z, BaseTypeSint8:
		width = 1
	case BaseTypeSint16, BaseTypeUint16, BaseTypeUint16z:
		width = 2
	case BaseTypeSint32, BaseTypeUint32, BaseTypeUint32z, BaseTypeFloat32:
		width = 4
	case BaseTypeSint64, BaseTypeUint64, BaseTypeUint64z, BaseTypeFloat64:
		width = 8
	case BaseTypeString, BaseTypeByte:
		// declared size, handled below
	default:
		return v, &UnsupportedBaseTypeError{BaseType: def.BaseType}
	}
	if len(data) < width {
		return v, ErrTruncatedInput
	}

	switch def.BaseType {
	case BaseTypeEnum, BaseTypeUint8, BaseTypeUint8z:
		v.Kind = KindUnsigned
		v.Uint = uint64(data[0])
	case BaseTypeSint8:
		v.Kind = KindSigned
		v.Sint = int64(int8(data[0]))
	case BaseTypeUint16, BaseTypeUint16z:
		v.Kind = KindUnsigned
		v.Uint = decodeUint(data, 2, bigEndian)
	case BaseTypeSint16:
		v.Kind = KindSigned
		v.Sint = int64(int16(decodeUint(data, 2, bigEndian)))
	case BaseTypeUint32, BaseTypeUint32z:
		v.Kind = KindUnsigned
		v.Uint = decodeUint(data, 4, bigEndian)
	case BaseTypeSint32:
		v.Kind = KindSigned
		v.Sint = int64(int32(decodeUint(data, 4, bigEndian)))
	case BaseTypeUint64, BaseTypeUint64z:
		v.Kind = KindUnsigned
		v.Uint = decodeUint(data, 8, bigEndian)
	case BaseTypeSint64:
		v.Kind = KindSigned
		v.Sint = int64(decodeUint(data, 8, bigEndian))
	case BaseTypeFloat32:
		// Floats are stored as a big-endian IEEE-754 bit pattern regardless
		// of the record's architecture flag.
		v.Kind = KindFloat
		v.Float = float64(math.Float32frombits(uint32(decodeUint(data, 4, true))))
	case BaseTypeFloat64:
		v.Kind = KindFloat
		v.Float = math.Float64frombits(decodeUint(data, 8, true))
	case BaseTypeString:
		v.Kind = KindString
		v.String = strings.TrimRight(string(data), "\x00")
	case BaseTypeByte:
		v.Kind = KindBytes
		v.Bytes = append([]byte(nil), data...)
	}

	return v, nil
}
