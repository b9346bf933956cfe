// Package session implements the chunked transmission state machine.
//
// This package is INTERNAL - clients MUST use the public API in the
// parent package.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/e7canasta/pendant-core/capture"
	"github.com/e7canasta/pendant-core/transport"
	"github.com/e7canasta/pendant-core/wire"
)

// Public errors - re-exported by the parent package.
var (
	// ErrSessionActive rejects a new capture while a transfer of the
	// same stream type is in flight (single-flight invariant).
	ErrSessionActive = errors.New("transmit: session already active")

	// ErrEmptyBuffer rejects zero-length captures; they never enter
	// Sending.
	ErrEmptyBuffer = errors.New("transmit: empty capture buffer")

	// ErrIdle reports a Step with no active session.
	ErrIdle = errors.New("transmit: no active session")

	// ErrLinkLost reports a Step that found the sink not ready; the
	// session has been aborted and the capture discarded.
	ErrLinkLost = errors.New("transmit: link lost mid-session")
)

// Stats is a snapshot of one session's transfer progress.
type Stats struct {
	Active     bool
	TraceID    string
	Total      int
	BytesSent  int
	FramesSent uint64
	Seq        uint16
}

// Session tracks one in-flight chunked transfer for a single stream
// type: Idle → Sending → Idle. While Sending it is the sole owner of
// the capture buffer; ownership returns to the producer on completion
// and on abort, exactly once.
type Session struct {
	typ          byte
	transportMax int
	releaser     Releaser
	sink         transport.Sink
	log          logrus.FieldLogger

	buf        *capture.Buffer
	bytesSent  int
	seq        uint16
	framesSent uint64
	traceID    string
}

// Releaser returns buffer ownership to the capture producer.
// capture.Producer satisfies it.
type Releaser interface {
	Release(*capture.Buffer)
}

// NewSession creates an idle session for one stream type.
func NewSession(typ byte, transportMax int, releaser Releaser, sink transport.Sink, log logrus.FieldLogger) *Session {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	return &Session{
		typ:          typ,
		transportMax: transportMax,
		releaser:     releaser,
		sink:         sink,
		log:          log.WithField("stream", wireTypeName(typ)),
	}
}

// Active reports whether a transfer is in flight.
func (s *Session) Active() bool { return s.buf != nil }

// Type returns the stream type byte.
func (s *Session) Type() byte { return s.typ }

// Begin arms the session with a ready capture buffer and takes
// ownership of it. Rejected without altering session state while a
// transfer is in flight. Zero-length buffers are released back
// immediately and never enter Sending.
func (s *Session) Begin(buf *capture.Buffer) error {
	if s.buf != nil {
		return ErrSessionActive
	}
	if buf == nil || buf.Len() == 0 {
		if buf != nil {
			s.releaser.Release(buf)
		}
		return ErrEmptyBuffer
	}

	s.buf = buf
	s.bytesSent = 0
	s.seq = 0
	s.framesSent = 0
	s.traceID = uuid.NewString()

	s.log.WithFields(logrus.Fields{
		"trace_id": s.traceID,
		"total":    buf.Len(),
	}).Debug("transmission session armed")
	return nil
}

// Step performs one chunk-send. Call once per scheduler tick while the
// governing predicate (session active AND sink ready) holds.
//
// Sends the next chunk while payload remains; once the buffer is
// exhausted it sends exactly one end marker, releases the buffer to
// the producer and returns to Idle. A sink failure mid-transfer aborts
// the session: the capture is discarded, never retried.
func (s *Session) Step() error {
	if s.buf == nil {
		return ErrIdle
	}
	if !s.sink.IsReady() {
		s.Abort()
		return ErrLinkLost
	}

	remaining := s.buf.Len() - s.bytesSent
	if remaining == 0 {
		if err := s.sink.Send(wire.EncodeEndMarker(s.typ)); err != nil {
			s.Abort()
			return fmt.Errorf("transmit: end marker: %w", err)
		}
		s.log.WithFields(logrus.Fields{
			"trace_id": s.traceID,
			"bytes":    s.bytesSent,
			"frames":   s.framesSent,
		}).Info("transmission complete")
		s.finish()
		return nil
	}

	chunk := wire.UsableChunk(s.transportMax)
	if chunk > remaining {
		chunk = remaining
	}
	frame := wire.EncodeFrame(s.seq, s.typ, s.buf.Data[s.bytesSent:s.bytesSent+chunk])
	if err := s.sink.Send(frame); err != nil {
		s.Abort()
		return fmt.Errorf("transmit: chunk %d: %w", s.seq, err)
	}

	s.bytesSent += chunk
	s.seq++ // wraps at 2^16, not an error
	s.framesSent++
	return nil
}

// Abort discards an in-flight transfer: the buffer is released to the
// producer, counters reset, no end marker sent. Idempotent; calling it
// on an idle session is a no-op.
func (s *Session) Abort() {
	if s.buf == nil {
		return
	}
	s.log.WithFields(logrus.Fields{
		"trace_id": s.traceID,
		"sent":     s.bytesSent,
		"total":    s.buf.Len(),
	}).Warn("transmission aborted, capture discarded")
	s.finish()
}

// finish releases the buffer and returns to Idle. The release-once
// guarantee across completion and abort holds because finish is the
// only release site and clears s.buf.
func (s *Session) finish() {
	s.releaser.Release(s.buf)
	s.buf = nil
	s.bytesSent = 0
	s.seq = 0
	s.framesSent = 0
	s.traceID = ""
}

// Stats returns a progress snapshot.
func (s *Session) Stats() Stats {
	st := Stats{
		Active:     s.buf != nil,
		TraceID:    s.traceID,
		BytesSent:  s.bytesSent,
		FramesSent: s.framesSent,
		Seq:        s.seq,
	}
	if s.buf != nil {
		st.Total = s.buf.Len()
	}
	return st
}

func wireTypeName(typ byte) string {
	switch typ {
	case wire.TypePhoto:
		return "photo"
	case wire.TypeVideo:
		return "video"
	case wire.TypeAudio:
		return "audio"
	default:
		return "unknown"
	}
}
