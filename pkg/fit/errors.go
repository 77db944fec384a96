package fit

import "fmt"

// Errors
var (
	ErrTruncatedInput = &DecodeError{"truncated input"}
	ErrInvalidHeader  = &DecodeError{"invalid file header"}
	ErrReservedBitSet = &DecodeError{"reserved header bit set"}
)

// DecodeError represents a fatal wire-format error. Once one of these is
// returned, byte alignment is lost and the remainder of the stream cannot be
// decoded.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return e.Message
}

// UndefinedLocalMessageError is returned when a data record references a local
// message type that no prior definition record in the stream has defined.
type UndefinedLocalMessageError struct {
	LocalMsgType byte
}

func (e *UndefinedLocalMessageError) Error() string {
	return fmt.Sprintf("no definition for local message type %d", e.LocalMsgType)
}

// UnsupportedBaseTypeError is returned when a field declares a base type the
// codec does not know how to size or interpret. Skipping such a field is not
// an option: every later field offset depends on this one being consumed
// correctly, so decoding stops here.
type UnsupportedBaseTypeError struct {
	BaseType byte
}

func (e *UnsupportedBaseTypeError) Error() string {
	return fmt.Sprintf("unsupported base type 0x%02x", e.BaseType)
}

// CRCError reports a mismatch between the trailing file checksum and the
// checksum computed over the decoded bytes. Messages delivered before the
// trailer was read remain valid.
type CRCError struct {
	Want uint16 // checksum stored in the file trailer
	Got  uint16 // checksum computed over the data section
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("checksum mismatch: file has 0x%04x, computed 0x%04x", e.Want, e.Got)
}
