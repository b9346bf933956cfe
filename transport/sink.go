package transport

import "errors"

var (
	// ErrNotReady is returned by Send when the link is down or
	// notifications are not enabled.
	ErrNotReady = errors.New("transport: sink not ready")

	// ErrPayloadTooLarge is returned when a frame exceeds the
	// negotiated maximum payload.
	ErrPayloadTooLarge = errors.New("transport: frame exceeds maximum payload")
)

// Sink is the transmit side of the radio boundary.
type Sink interface {
	// IsReady reports whether the link is up and the peer subscribed.
	IsReady() bool

	// Send pushes one frame. Frames are bounded by the negotiated
	// maximum payload; implementations reject larger ones.
	Send(frame []byte) error
}

// MemorySink records sent frames for tests and host-side inspection.
// Readiness is toggleable to simulate asynchronous link loss.
type MemorySink struct {
	// MaxPayload bounds accepted frames; zero means unbounded.
	MaxPayload int

	ready  bool
	frames [][]byte
}

// NewMemorySink creates a ready sink with the given payload bound.
func NewMemorySink(maxPayload int) *MemorySink {
	return &MemorySink{MaxPayload: maxPayload, ready: true}
}

// IsReady implements Sink.
func (m *MemorySink) IsReady() bool { return m.ready }

// SetReady toggles link readiness.
func (m *MemorySink) SetReady(ready bool) { m.ready = ready }

// Send implements Sink, copying the frame so callers may reuse their
// buffers.
func (m *MemorySink) Send(frame []byte) error {
	if !m.ready {
		return ErrNotReady
	}
	if m.MaxPayload > 0 && len(frame) > m.MaxPayload {
		return ErrPayloadTooLarge
	}
	cp := make([]byte, len(frame))
	copy(cp, frame)
	m.frames = append(m.frames, cp)
	return nil
}

// Frames returns the frames sent so far.
func (m *MemorySink) Frames() [][]byte { return m.frames }

// Reset drops recorded frames.
func (m *MemorySink) Reset() { m.frames = nil }
