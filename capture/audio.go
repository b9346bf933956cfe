package capture

import (
	"errors"

	"github.com/e7canasta/pendant-core/wire"
)

// ErrTransportTooSmall is returned when the negotiated transport
// payload cannot even carry a sub-chunk header plus one byte.
var ErrTransportTooSmall = errors.New("capture: transport payload too small for audio framing")

// AudioChunker frames encoded audio for the transport. A logical frame
// that fits the usable data-frame payload goes out as one
// 3-byte-header audio frame; an oversized frame is split into
// micro-header sub-chunks, the final one flagged 0x80.
//
// The chunker owns the audio sequence counter. It wraps silently at
// 2^16 and resets to zero on link loss, so a receiver sees seq 0 open
// every fresh link session.
type AudioChunker struct {
	transportMax int
	seq          uint16
}

// NewAudioChunker creates a chunker for a transport with the given
// maximum payload size.
func NewAudioChunker(transportMax int) (*AudioChunker, error) {
	if wire.UsableSubChunk(transportMax) <= 0 {
		return nil, ErrTransportTooSmall
	}
	return &AudioChunker{transportMax: transportMax}, nil
}

// Frames converts one encoded logical audio frame into the transport
// units to send, in order. The logical frame consumes exactly one
// sequence number regardless of how many sub-chunks it needs.
func (a *AudioChunker) Frames(frame []byte) [][]byte {
	if len(frame) == 0 {
		return nil
	}
	seq := a.seq
	a.seq++ // wraps at 2^16, not an error

	if len(frame) <= wire.UsableChunk(a.transportMax) {
		return [][]byte{wire.EncodeFrame(seq, wire.TypeAudio, frame)}
	}

	usable := wire.UsableSubChunk(a.transportMax)
	var out [][]byte
	for off, idx := 0, 0; off < len(frame); idx++ {
		end := off + usable
		if end > len(frame) {
			end = len(frame)
		}
		last := end == len(frame)
		out = append(out, wire.EncodeSubChunk(seq, byte(idx), last, frame[off:end]))
		off = end
	}
	return out
}

// Seq returns the next sequence number, for diagnostics.
func (a *AudioChunker) Seq() uint16 { return a.seq }

// Reset zeroes the sequence counter. Called on link loss; receivers
// must not assume monotonic sequence numbers across that boundary.
func (a *AudioChunker) Reset() { a.seq = 0 }
