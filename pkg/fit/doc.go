// Package fit decodes the binary activity-file format recorded by fitness and
// GPS devices into a stream of typed, timestamped messages.
//
// # Wire Format
//
// A file is a 12-or-14-byte header, an interleaved sequence of definition and
// data records, and a trailing 2-byte checksum:
//
//	[Header(12|14)][Record]...[Record][CRC16(2)]
//
// A definition record declares the field layout (field number, byte size,
// base type) for one of 16 local message type slots; a data record carries
// raw field bytes laid out per the most recent definition for its slot. A
// compressed-timestamp record is a data record whose header packs a 5-bit
// delta against the running timestamp.
//
// # Usage
//
//	dec := fit.NewDecoder(f)
//	header, err := dec.Decode(func(msg fit.Message) {
//	    // msg.GlobalMsgNum identifies the message kind;
//	    // msg.Fields are the decoded field values.
//	})
//
// The sink is called synchronously, once per data message, in stream order.
// Decoding is a single forward pass: the first malformed record ends the
// decode, because record boundaries are only inferable by correctly decoding
// every preceding record. Messages delivered before the failure remain valid.
//
// # Scope
//
// The decoder is wire-level only. It does not know what a global message
// number means; mapping (global message number, field number) pairs to names
// and units is the caller's concern (see the profile package for the message
// name catalog). There is no encoder.
package fit
