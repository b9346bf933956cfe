// Package transmit implements the chunked, sequenced streaming
// protocol that moves capture buffers over the bounded transport.
//
// # Session Lifecycle
//
// Each stream type (photo, video) has one Session:
//
//	Idle → Sending → Idle
//
// Begin arms the session with a capture buffer and enforces the
// single-flight invariant: a new capture for a stream type is refused
// while that type's transfer is in flight. Step, driven once per
// scheduler tick by the DataTransmission cycle, sends one
// header-prefixed chunk; when the buffer is exhausted it sends exactly
// one end marker and returns the buffer to its producer.
//
// # Flow Control
//
// The transport is bounded: chunk payloads reserve the 3-byte header
// from the negotiated maximum, and one chunk goes out per tick, so the
// scheduler's pass rate is the throttle. There is no windowing and no
// retransmission.
//
// # Abort Semantics
//
// Link loss aborts the transfer immediately: the buffer is released
// (exactly once, shared with the completion path), counters reset, and
// no end marker is sent. The capture is discarded, never retried —
// best-effort streaming by design. The next successful capture starts
// a fresh session with seq 0.
package transmit
