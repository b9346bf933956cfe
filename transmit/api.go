package transmit

import "github.com/e7canasta/pendant-core/transmit/internal/session"

// Public API - re-export internal types as stable contract

// Session tracks one in-flight chunked transfer for a stream type.
type Session = session.Session

// Set owns the per-type sessions and services them one chunk per tick.
type Set = session.Set

// Releaser returns buffer ownership to the capture producer.
type Releaser = session.Releaser

// Stats is a snapshot of one session's transfer progress.
type Stats = session.Stats

// Public API errors - re-export internal errors as stable contract
var (
	ErrSessionActive = session.ErrSessionActive
	ErrEmptyBuffer   = session.ErrEmptyBuffer
	ErrIdle          = session.ErrIdle
	ErrLinkLost      = session.ErrLinkLost
)
