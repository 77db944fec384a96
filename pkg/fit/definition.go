package fit

// Reserved field numbers the decoder consumes itself instead of emitting.
const (
	FieldNumTimestamp    byte = 253 // updates the running timestamp
	FieldNumMessageIndex byte = 254 // repeat-group ordering, reported out of band
	FieldNumPartIndex    byte = 250 // recognized but passed through undecorated
)

// FieldDefinition describes one field of a local message: which profile field
// it is, how many bytes a data record carries for it, and how those bytes are
// typed. Produced only by definition records and immutable afterwards.
type FieldDefinition struct {
	Num            byte
	Size           byte
	BaseType       byte
	DeveloperField bool
}

// MessageDefinition is the current shape of one local message type: the
// global message number it maps to, the byte order its values use, and the
// ordered field list a data record must be read against.
type MessageDefinition struct {
	GlobalMsgNum uint16
	BigEndian    bool
	Fields       []FieldDefinition
}

// definitionTable maps the 4-bit local message type space to its currently
// active definition. This is the central mutable state of the protocol: a
// stream redefines slots freely, and a data record always means whatever the
// most recent definition for its slot says.
type definitionTable struct {
	defs [16]*MessageDefinition
}

// insert replaces whatever definition previously occupied the slot.
func (t *definitionTable) insert(localMsgType byte, def *MessageDefinition) {
	t.defs[localMsgType&0x0f] = def
}

// lookup returns the active definition for the slot, or nil if the stream has
// not defined it yet.
func (t *definitionTable) lookup(localMsgType byte) *MessageDefinition {
	return t.defs[localMsgType&0x0f]
}
