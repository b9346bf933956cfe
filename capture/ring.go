package capture

// Ring is a fixed-size byte ring used by the audio accumulation cycle.
// Writes that pass the end of the backing array wrap and invoke the
// OnWrap callback; overwriting unread data drops the oldest bytes,
// keeping latency bounded the same way the frame pipeline drops frames.
type Ring struct {
	buf   []byte
	read  int
	write int
	size  int

	// OnWrap runs every time the write index wraps past the end of
	// the backing array.
	OnWrap func()

	// Dropped counts bytes overwritten before they were read.
	Dropped uint64
}

// NewRing creates a ring with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring{buf: make([]byte, capacity)}
}

// Write copies p into the ring, overwriting the oldest unread bytes
// if the ring is full. Returns len(p).
func (r *Ring) Write(p []byte) int {
	for _, b := range p {
		if r.size == len(r.buf) {
			// Full: drop oldest.
			r.read = (r.read + 1) % len(r.buf)
			r.size--
			r.Dropped++
		}
		r.buf[r.write] = b
		r.write++
		if r.write == len(r.buf) {
			r.write = 0
			if r.OnWrap != nil {
				r.OnWrap()
			}
		}
		r.size++
	}
	return len(p)
}

// Read copies up to len(p) buffered bytes into p and returns the
// count.
func (r *Ring) Read(p []byte) int {
	n := 0
	for n < len(p) && r.size > 0 {
		p[n] = r.buf[r.read]
		r.read = (r.read + 1) % len(r.buf)
		r.size--
		n++
	}
	return n
}

// Len returns the number of unread bytes.
func (r *Ring) Len() int { return r.size }

// Cap returns the ring capacity.
func (r *Ring) Cap() int { return len(r.buf) }
