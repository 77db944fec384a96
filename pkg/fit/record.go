package fit

// Record header bit layout. Bit 7 selects the compressed-timestamp form,
// which relocates the local message type to bits 5-6 and packs a 5-bit time
// offset into bits 0-4. In the normal form, bit 6 marks a definition record,
// bit 5 marks appended developer field definitions, bit 4 is reserved and
// must be zero, and bits 0-3 carry the local message type.
const (
	recordHdrCompressed      = 0x80
	recordHdrDefinition      = 0x40
	recordHdrDevFields       = 0x20
	recordHdrReserved        = 0x10
	recordHdrLocalMask       = 0x0f
	recordHdrTimeOffsetMask  = 0x1f
	recordHdrCompressedLocal = 0x60
)

// Fixed layout of the 5 bytes that open a definition record.
const (
	defMsgArchitecture = 1
	defMsgGlobalNum    = 2
	defMsgNumFields    = 4
	defMsgHeaderSize   = 5
	fieldDefSize       = 3
)

// readRecord consumes one record: a definition record updates the definition
// table, a data record produces one message for the sink. Any error returned
// here is terminal for the stream; record boundaries downstream of a misparse
// cannot be recovered.
func (d *Decoder) readRecord(fn MessageFunc) error {
	hdr, err := d.readByte()
	if err != nil {
		return err
	}

	if hdr&recordHdrCompressed != 0 {
		return d.readCompressedTimestampMessage(hdr, fn)
	}
	return d.readNormalMessage(hdr, fn)
}

func (d *Decoder) readNormalMessage(hdr byte, fn MessageFunc) error {
	// The reserved bit carries no defined meaning; treating a set bit as a
	// forward-compatible extension is not possible without knowing how many
	// bytes it implies, so it is stream corruption here.
	if hdr&recordHdrReserved != 0 {
		return ErrReservedBitSet
	}

	if hdr&recordHdrDefinition != 0 {
		return d.readDefinitionMessage(hdr)
	}
	return d.readDataMessage(hdr&recordHdrLocalMask, fn)
}

// readDefinitionMessage installs a new definition for the local message type
// named in the record header. It produces no message.
func (d *Decoder) readDefinitionMessage(hdr byte) error {
	var fixed [defMsgHeaderSize]byte
	if err := d.readFull(fixed[:]); err != nil {
		return err
	}

	// The architecture flag governs the global message number here and every
	// multi-byte value in data records decoded against this definition.
	bigEndian := fixed[defMsgArchitecture] == 1
	globalMsgNum := uint16(decodeUint(fixed[defMsgGlobalNum:defMsgGlobalNum+2], 2, bigEndian))

	numFields := int(fixed[defMsgNumFields])
	fields, err := d.readFieldDefinitions(numFields, false)
	if err != nil {
		return err
	}

	if hdr&recordHdrDevFields != 0 {
		count, err := d.readByte()
		if err != nil {
			return err
		}
		devFields, err := d.readFieldDefinitions(int(count), true)
		if err != nil {
			return err
		}
		fields = append(fields, devFields...)
	}

	d.state.defs.insert(hdr&recordHdrLocalMask, &MessageDefinition{
		GlobalMsgNum: globalMsgNum,
		BigEndian:    bigEndian,
		Fields:       fields,
	})

	return nil
}

func (d *Decoder) readFieldDefinitions(n int, developer bool) ([]FieldDefinition, error) {
	fields := make([]FieldDefinition, 0, n)
	var raw [fieldDefSize]byte
	for i := 0; i < n; i++ {
		if err := d.readFull(raw[:]); err != nil {
			return nil, err
		}
		fields = append(fields, FieldDefinition{
			Num:            raw[0],
			Size:           raw[1],
			BaseType:       raw[2],
			DeveloperField: developer,
		})
	}
	return fields, nil
}

// readDataMessage decodes the field bytes of one data record against the
// active definition for localMsgType and delivers the result to the sink.
func (d *Decoder) readDataMessage(localMsgType byte, fn MessageFunc) error {
	def := d.state.defs.lookup(localMsgType)
	if def == nil {
		return &UndefinedLocalMessageError{LocalMsgType: localMsgType}
	}

	// A timestamp field in this record replaces the running timestamp for
	// this and all subsequent records.
	timestamp := d.state.timestamp
	var messageIndex uint16

	fields := make([]FieldValue, 0, len(def.Fields))
	for _, fd := range def.Fields {
		data := make([]byte, int(fd.Size))
		if err := d.readFull(data); err != nil {
			return err
		}

		switch fd.Num {
		case FieldNumTimestamp:
			v, err := decodeValue(fd, data, def.BigEndian)
			if err != nil {
				return err
			}
			timestamp = uint32(v.Uint)
		case FieldNumMessageIndex:
			v, err := decodeValue(fd, data, def.BigEndian)
			if err != nil {
				return err
			}
			messageIndex = uint16(v.Uint)
		default:
			// Includes the reserved part-index field, which has no defined
			// semantic and is handed to the caller as an ordinary field.
			v, err := decodeValue(fd, data, def.BigEndian)
			if err != nil {
				return err
			}
			fields = append(fields, v)
		}
	}

	fn(Message{
		Timestamp:    unixTimestamp(timestamp),
		GlobalMsgNum: def.GlobalMsgNum,
		LocalMsgType: localMsgType,
		MessageIndex: messageIndex,
		Fields:       fields,
	})

	d.state.timestamp = timestamp
	return nil
}

// readCompressedTimestampMessage applies the 5-bit time offset packed into the
// record header, then decodes the payload exactly like a plain data record.
func (d *Decoder) readCompressedTimestampMessage(hdr byte, fn MessageFunc) error {
	offset := uint32(hdr & recordHdrTimeOffsetMask)
	running := d.state.timestamp
	if offset >= running&recordHdrTimeOffsetMask {
		d.state.timestamp = (running &^ recordHdrTimeOffsetMask) + offset
	} else {
		// The 5-bit field rolled over since the last absolute timestamp.
		d.state.timestamp = (running &^ recordHdrTimeOffsetMask) + offset + 32
	}

	localMsgType := (hdr & recordHdrCompressedLocal) >> 5
	return d.readDataMessage(localMsgType, fn)
}
