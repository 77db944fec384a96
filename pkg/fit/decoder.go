package fit

import (
	"bufio"
	"encoding/binary"
	"io"
)

// fitEpochOffset converts the format's timestamp origin (1989-12-31T00:00:00Z)
// to the Unix epoch.
const fitEpochOffset = 631065600

// Message is one decoded data record from the stream.
type Message struct {
	// Timestamp is the running timestamp as Unix seconds, or zero when the
	// stream has not carried a timestamp yet.
	Timestamp    uint32
	GlobalMsgNum uint16
	LocalMsgType byte
	MessageIndex uint16
	Fields       []FieldValue
}

// MessageFunc receives each decoded data message, synchronously and in stream
// order. Expensive sinks should hand the message off and return; the decoder
// does not proceed until the sink does. Caller state that the reference
// callback API threaded through a context pointer is a closure capture here.
type MessageFunc func(msg Message)

// parseState is the mutable context one decode pass threads through every
// record: the local definition table, the running timestamp, and the byte
// count that bounds the read loop. Created fresh per decode, never shared.
type parseState struct {
	defs      definitionTable
	timestamp uint32
	bytesRead uint64
	crc       uint16
}

// Decoder reads one activity stream. It is single-use and single-threaded:
// construct one per stream, call Decode once, and construct independent
// decoders to work on multiple streams concurrently.
type Decoder struct {
	r         *bufio.Reader
	state     parseState
	strictCRC bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithStrictCRC makes Decode verify the trailing checksum and fail with a
// *CRCError on mismatch. Messages delivered before the trailer is read remain
// valid; the default mode matches common tooling and ignores the trailer.
func WithStrictCRC() Option {
	return func(d *Decoder) {
		d.strictCRC = true
	}
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{r: bufio.NewReader(r)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads the whole stream: header, records, checksum trailer. fn is
// invoked once per data message. The returned header is non-nil as soon as it
// parsed, even when a later record fails; messages delivered before a failure
// are valid, everything past the failure point is lost.
func (d *Decoder) Decode(fn MessageFunc) (*Header, error) {
	h, err := ReadHeader(d.r)
	if err != nil {
		return nil, err
	}
	if !h.Validate() {
		return nil, ErrInvalidHeader
	}

	d.state = parseState{bytesRead: uint64(h.Len())}

	// The data size declared in the header bounds the loop; the trailing
	// two-byte checksum is not record data. Relying on EOF instead would
	// misread streams with trailing padding.
	budget := int64(h.Len()) + int64(h.DataSize()) - 2
	for int64(d.state.bytesRead) < budget {
		if err := d.readRecord(fn); err != nil {
			return h, err
		}
	}

	if d.strictCRC {
		var trailer [2]byte
		if _, err := io.ReadFull(d.r, trailer[:]); err != nil {
			return h, ErrTruncatedInput
		}
		if want := binary.LittleEndian.Uint16(trailer[:]); want != d.state.crc {
			return h, &CRCError{Want: want, Got: d.state.crc}
		}
	}

	return h, nil
}

// Checksum returns the CRC computed over every byte consumed after the
// header. Meaningful after Decode returns.
func (d *Decoder) Checksum() uint16 {
	return d.state.crc
}

// readFull fills buf from the stream, keeping the byte account and running
// checksum current. Short reads surface as ErrTruncatedInput: a fixed-size
// read that cannot complete means the stream lied about its shape.
func (d *Decoder) readFull(buf []byte) error {
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return ErrTruncatedInput
	}
	d.state.bytesRead += uint64(len(buf))
	d.state.crc = crc16Update(d.state.crc, buf)
	return nil
}

func (d *Decoder) readByte() (byte, error) {
	var b [1]byte
	if err := d.readFull(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// unixTimestamp converts a FIT-epoch timestamp for the sink. Zero means "no
// timestamp seen yet" and stays zero.
func unixTimestamp(ts uint32) uint32 {
	if ts == 0 {
		return 0
	}
	return ts + fitEpochOffset
}
