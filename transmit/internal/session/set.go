package session

// Set owns the photo and video sessions. At most one session per
// stream type is active at any time; Step services one chunk per tick
// for the first active session in fixed photo-then-video order, so a
// photo upload is never starved by a concurrent video stream.
type Set struct {
	sessions []*Session
}

// NewSet groups sessions in service order.
func NewSet(sessions ...*Session) *Set {
	return &Set{sessions: sessions}
}

// Session returns the session for a stream type, nil if absent.
func (t *Set) Session(typ byte) *Session {
	for _, s := range t.sessions {
		if s.typ == typ {
			return s
		}
	}
	return nil
}

// Active reports whether any session is in flight. This is the
// governing predicate of the DataTransmission cycle together with sink
// readiness.
func (t *Set) Active() bool {
	for _, s := range t.sessions {
		if s.Active() {
			return true
		}
	}
	return false
}

// Step sends one chunk for the first active session.
func (t *Set) Step() error {
	for _, s := range t.sessions {
		if s.Active() {
			return s.Step()
		}
	}
	return ErrIdle
}

// AbortAll discards every in-flight transfer. Called by the connection
// monitor on link loss.
func (t *Set) AbortAll() {
	for _, s := range t.sessions {
		s.Abort()
	}
}
