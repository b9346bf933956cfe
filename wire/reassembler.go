package wire

import "errors"

var (
	// ErrSequenceGap is returned when a data frame arrives out of
	// order within one stream.
	ErrSequenceGap = errors.New("wire: sequence gap in stream")

	// ErrFragmentGap is returned when a sub-chunk index is not the
	// expected next fragment of the logical frame.
	ErrFragmentGap = errors.New("wire: fragment gap in logical frame")
)

// Reassembler rebuilds one chunked stream on the client side. It
// accepts data frames in order, accumulates payloads, and reports
// completion when the end marker arrives.
//
// A frame with Seq == 0 always starts a fresh blob: the pendant resets
// its sequence counter after link loss without warning, so seq 0 is
// the only reliable stream boundary besides the end marker.
type Reassembler struct {
	buf     []byte
	nextSeq uint16
	active  bool
}

// NewReassembler returns an empty Reassembler.
func NewReassembler() *Reassembler {
	return &Reassembler{}
}

// Accept consumes one parsed frame. It returns the completed blob and
// true when f is the end marker; otherwise nil and false.
func (r *Reassembler) Accept(f Frame) ([]byte, bool, error) {
	if f.End {
		blob := r.buf
		r.reset()
		return blob, true, nil
	}

	if f.Seq == 0 || !r.active {
		r.reset()
		r.active = true
	}
	if f.Seq != r.nextSeq {
		err := ErrSequenceGap
		r.reset()
		return nil, false, err
	}

	r.buf = append(r.buf, f.Payload...)
	r.nextSeq++ // wraps with the sender at 2^16
	return nil, false, nil
}

func (r *Reassembler) reset() {
	r.buf = nil
	r.nextSeq = 0
	r.active = false
}

// FrameReassembler rebuilds oversized logical audio frames from
// sub-chunks. Fragments of one logical frame share a Seq and arrive
// with contiguous indices; the 0x80 flag closes the frame.
type FrameReassembler struct {
	buf       []byte
	seq       uint16
	nextIndex byte
	active    bool
}

// NewFrameReassembler returns an empty FrameReassembler.
func NewFrameReassembler() *FrameReassembler {
	return &FrameReassembler{}
}

// Accept consumes one parsed sub-chunk. It returns the reconstructed
// logical frame and true when c carries the last-fragment flag.
func (fr *FrameReassembler) Accept(c SubChunk) ([]byte, bool, error) {
	if c.Index == 0 {
		fr.buf = fr.buf[:0]
		fr.seq = c.Seq
		fr.nextIndex = 0
		fr.active = true
	}
	if !fr.active || c.Seq != fr.seq || c.Index != fr.nextIndex {
		fr.active = false
		return nil, false, ErrFragmentGap
	}

	fr.buf = append(fr.buf, c.Payload...)
	fr.nextIndex++

	if c.Last {
		frame := make([]byte, len(fr.buf))
		copy(frame, fr.buf)
		fr.active = false
		return frame, true, nil
	}
	return nil, false, nil
}
