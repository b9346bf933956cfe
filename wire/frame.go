package wire

import "errors"

var (
	// ErrShortFrame is returned when a buffer is too small to contain
	// a frame header.
	ErrShortFrame = errors.New("wire: buffer shorter than frame header")

	// ErrShortSubChunk is returned when a buffer is too small to
	// contain a sub-chunk header.
	ErrShortSubChunk = errors.New("wire: buffer shorter than sub-chunk header")
)

// Frame is one decoded transport unit of a chunked stream.
type Frame struct {
	Seq     uint16
	Type    byte
	Payload []byte
	End     bool // true for the end-marker sentinel
}

// SubChunk is one decoded fragment of an oversized logical audio frame.
type SubChunk struct {
	Seq     uint16 // logical frame sequence, shared by all fragments
	Index   byte   // fragment index within the logical frame, from 0
	Last    bool   // final fragment of the logical frame
	Payload []byte
}

// AppendFrame appends a data frame (header + payload) to dst and
// returns the extended slice. The payload is copied, so dst is safe to
// send after the source buffer is released.
func AppendFrame(dst []byte, seq uint16, typ byte, payload []byte) []byte {
	dst = append(dst, byte(seq), byte(seq>>8), typ)
	return append(dst, payload...)
}

// EncodeFrame builds a data frame in a fresh buffer.
func EncodeFrame(seq uint16, typ byte, payload []byte) []byte {
	return AppendFrame(make([]byte, 0, FrameHeaderSize+len(payload)), seq, typ, payload)
}

// EncodeEndMarker builds the 3-byte completion sentinel for a stream
// type.
func EncodeEndMarker(typ byte) []byte {
	return []byte{EndMarkerLow, EndMarkerHigh, typ}
}

// EncodeSubChunk builds one sub-chunk of an oversized logical frame.
func EncodeSubChunk(seq uint16, index byte, last bool, payload []byte) []byte {
	var flags byte
	if last {
		flags |= FlagLastSubChunk
	}
	dst := make([]byte, 0, SubChunkHeaderSize+len(payload))
	dst = append(dst, byte(seq), byte(seq>>8), index, flags)
	return append(dst, payload...)
}

// ParseFrame decodes a data frame or end marker. The returned payload
// aliases data; callers that retain it past the read must copy.
func ParseFrame(data []byte) (Frame, error) {
	if len(data) < FrameHeaderSize {
		return Frame{}, ErrShortFrame
	}
	f := Frame{
		Seq:     uint16(data[0]) | uint16(data[1])<<8,
		Type:    data[2],
		Payload: data[FrameHeaderSize:],
	}
	if data[0] == EndMarkerLow && data[1] == EndMarkerHigh && len(data) == EndMarkerSize {
		f.End = true
		f.Payload = nil
	}
	return f, nil
}

// ParseSubChunk decodes an audio sub-chunk. The returned payload
// aliases data.
func ParseSubChunk(data []byte) (SubChunk, error) {
	if len(data) < SubChunkHeaderSize {
		return SubChunk{}, ErrShortSubChunk
	}
	return SubChunk{
		Seq:     uint16(data[0]) | uint16(data[1])<<8,
		Index:   data[2],
		Last:    data[3]&FlagLastSubChunk != 0,
		Payload: data[SubChunkHeaderSize:],
	}, nil
}
