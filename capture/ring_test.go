package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRingWrapCallback verifies OnWrap fires when the write index
// passes the end of the backing array.
func TestRingWrapCallback(t *testing.T) {
	r := NewRing(8)
	wraps := 0
	r.OnWrap = func() { wraps++ }

	r.Write(make([]byte, 7))
	assert.Equal(t, 0, wraps)

	r.Write(make([]byte, 2))
	assert.Equal(t, 1, wraps)

	r.Write(make([]byte, 16))
	assert.Equal(t, 3, wraps)
}

// TestRingDropsOldest verifies overwrites drop the oldest bytes and
// keep the newest.
func TestRingDropsOldest(t *testing.T) {
	r := NewRing(4)
	r.Write([]byte{1, 2, 3, 4, 5, 6})

	out := make([]byte, 8)
	n := r.Read(out)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{3, 4, 5, 6}, out[:n])
	assert.Equal(t, uint64(2), r.Dropped)
}

// TestRingReadWriteRoundTrip verifies interleaved reads and writes.
func TestRingReadWriteRoundTrip(t *testing.T) {
	r := NewRing(16)

	r.Write([]byte("hello"))
	buf := make([]byte, 3)
	assert.Equal(t, 3, r.Read(buf))
	assert.Equal(t, "hel", string(buf))

	r.Write([]byte(" world"))
	rest := make([]byte, 16)
	n := r.Read(rest)
	assert.Equal(t, "lo world", string(rest[:n]))
	assert.Equal(t, 0, r.Len())
}

// TestSimProducers verifies buffer tagging and release-once guarding.
func TestSimProducers(t *testing.T) {
	cam := NewSimCamera(128)

	cam.FailNext = 1
	_, ok := cam.TryProduce()
	assert.False(t, ok, "failed capture must not produce")

	buf, ok := cam.TryProduce()
	assert.True(t, ok)
	assert.Equal(t, 128, buf.Len())
	assert.Equal(t, Checksum(buf.Data), buf.Checksum)

	cam.Release(buf)
	cam.Release(buf) // double release must not double count
	assert.Equal(t, uint64(1), cam.Releases())
	assert.True(t, buf.Released())

	mic := NewSimMicrophone(160)
	abuf, ok := mic.TryProduce()
	assert.True(t, ok)
	assert.Equal(t, 160, abuf.Len())
}
