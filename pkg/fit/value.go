package fit

// ValueKind tells callers which FieldValue member holds the decoded value.
type ValueKind byte

const (
	KindUnsigned ValueKind = iota // Uint
	KindSigned                    // Sint
	KindFloat                     // Float
	KindBytes                     // Bytes
	KindString                    // String
)

func (k ValueKind) String() string {
	switch k {
	case KindUnsigned:
		return "unsigned"
	case KindSigned:
		return "signed"
	case KindFloat:
		return "float"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	}
	return "unknown"
}

// FieldValue is one decoded field of a data message. FieldNum and BaseType
// come from the definition record the message was decoded against; Kind
// selects which of the value members is populated.
type FieldValue struct {
	FieldNum       byte
	BaseType       byte
	Kind           ValueKind
	DeveloperField bool

	Uint   uint64
	Sint   int64
	Float  float64
	Bytes  []byte
	String string
}

// Narrowing accessors for callers that know the field's profile width.

func (v FieldValue) Uint8() uint8   { return uint8(v.Uint) }
func (v FieldValue) Uint16() uint16 { return uint16(v.Uint) }
func (v FieldValue) Uint32() uint32 { return uint32(v.Uint) }
func (v FieldValue) Uint64() uint64 { return v.Uint }

func (v FieldValue) Sint8() int8   { return int8(v.Sint) }
func (v FieldValue) Sint16() int16 { return int16(v.Sint) }
func (v FieldValue) Sint32() int32 { return int32(v.Sint) }
func (v FieldValue) Sint64() int64 { return v.Sint }

func (v FieldValue) Float32() float32 { return float32(v.Float) }
func (v FieldValue) Float64() float64 { return v.Float }
