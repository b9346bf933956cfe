package capture

import (
	"math/rand"

	"github.com/e7canasta/pendant-core/wire"
)

// SimCamera is a host-side camera stand-in. TryProduce captures a
// snapshot on demand, mirroring the real driver's take-photo call.
type SimCamera struct {
	// BlobSize is the synthetic photo size in bytes.
	BlobSize int
	// Video marks produced buffers as video stream frames instead of
	// photos.
	Video bool
	// FailNext makes the next captures fail, for retry-path tests.
	FailNext int

	rng      *rand.Rand
	produced uint64
	releases uint64
}

// NewSimCamera creates a camera producing blobs of the given size.
func NewSimCamera(blobSize int) *SimCamera {
	return &SimCamera{
		BlobSize: blobSize,
		rng:      rand.New(rand.NewSource(1)),
	}
}

// TryProduce captures one snapshot on demand.
func (c *SimCamera) TryProduce() (*Buffer, bool) {
	if c.BlobSize <= 0 {
		return nil, false
	}
	if c.FailNext > 0 {
		c.FailNext--
		return nil, false
	}

	data := make([]byte, c.BlobSize)
	c.rng.Read(data)
	c.produced++

	typ := wire.TypePhoto
	if c.Video {
		typ = wire.TypeVideo
	}
	return &Buffer{Data: data, Type: typ, Checksum: Checksum(data)}, true
}

// Release returns buffer ownership. Double releases are swallowed but
// counted through the buffer guard, so tests can assert exactly-once.
func (c *SimCamera) Release(b *Buffer) {
	if b == nil {
		return
	}
	if err := b.MarkReleased(); err == nil {
		c.releases++
	}
}

// Releases returns how many buffers came back, for tests.
func (c *SimCamera) Releases() uint64 { return c.releases }

// SimMicrophone is a host-side microphone stand-in yielding synthetic
// encoded audio frames on every TryProduce.
type SimMicrophone struct {
	// FrameSize is the encoded frame size in bytes.
	FrameSize int

	rng      *rand.Rand
	releases uint64
}

// NewSimMicrophone creates a microphone producing encoded frames of
// the given size.
func NewSimMicrophone(frameSize int) *SimMicrophone {
	return &SimMicrophone{
		FrameSize: frameSize,
		rng:       rand.New(rand.NewSource(2)),
	}
}

// TryProduce yields the next encoded frame.
func (m *SimMicrophone) TryProduce() (*Buffer, bool) {
	if m.FrameSize <= 0 {
		return nil, false
	}
	data := make([]byte, m.FrameSize)
	m.rng.Read(data)
	return &Buffer{Data: data, Type: wire.TypeAudio, Checksum: Checksum(data)}, true
}

// Release returns buffer ownership.
func (m *SimMicrophone) Release(b *Buffer) {
	if b == nil {
		return
	}
	if err := b.MarkReleased(); err == nil {
		m.releases++
	}
}
