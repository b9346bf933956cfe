package capture

import (
	"bytes"
	"testing"

	"github.com/e7canasta/pendant-core/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAudioSubChunkSplit verifies the split arithmetic: a 1000-byte
// logical frame over a 400-byte transport yields 396/396/208 payloads
// with flags 0x00, 0x00, 0x80.
func TestAudioSubChunkSplit(t *testing.T) {
	ac, err := NewAudioChunker(400)
	require.NoError(t, err)

	logical := make([]byte, 1000)
	for i := range logical {
		logical[i] = byte(i)
	}

	frames := ac.Frames(logical)
	require.Len(t, frames, 3)

	wantSizes := []int{396, 396, 208}
	wantLast := []bool{false, false, true}
	var rebuilt []byte
	for i, f := range frames {
		c, err := wire.ParseSubChunk(f)
		require.NoError(t, err)
		assert.Equal(t, uint16(0), c.Seq, "all fragments share the frame seq")
		assert.Equal(t, byte(i), c.Index)
		assert.Equal(t, wantLast[i], c.Last)
		assert.Len(t, c.Payload, wantSizes[i])
		rebuilt = append(rebuilt, c.Payload...)
	}
	assert.True(t, bytes.Equal(rebuilt, logical), "concatenated payloads must reconstruct the frame")
}

// TestAudioSmallFrameSingleUnit verifies a frame that fits goes out as
// one 3-byte-header audio frame, not sub-chunks.
func TestAudioSmallFrameSingleUnit(t *testing.T) {
	ac, err := NewAudioChunker(400)
	require.NoError(t, err)

	frames := ac.Frames(make([]byte, 100))
	require.Len(t, frames, 1)

	f, err := wire.ParseFrame(frames[0])
	require.NoError(t, err)
	assert.Equal(t, wire.TypeAudio, f.Type)
	assert.Equal(t, uint16(0), f.Seq)
	assert.Len(t, f.Payload, 100)
}

// TestAudioSeqPerLogicalFrame verifies one sequence number per logical
// frame and reset on link loss.
func TestAudioSeqPerLogicalFrame(t *testing.T) {
	ac, err := NewAudioChunker(400)
	require.NoError(t, err)

	ac.Frames(make([]byte, 1000)) // 3 sub-chunks, seq 0
	frames := ac.Frames(make([]byte, 50))
	f, _ := wire.ParseFrame(frames[0])
	assert.Equal(t, uint16(1), f.Seq, "oversized frame must consume one seq")

	ac.Reset()
	frames = ac.Frames(make([]byte, 50))
	f, _ = wire.ParseFrame(frames[0])
	assert.Equal(t, uint16(0), f.Seq, "seq restarts after link loss")
}

// TestAudioChunkerRejectsTinyTransport verifies fail-fast validation.
func TestAudioChunkerRejectsTinyTransport(t *testing.T) {
	_, err := NewAudioChunker(4)
	assert.ErrorIs(t, err, ErrTransportTooSmall)
}

// TestAudioEmptyFrame verifies zero-length frames produce nothing.
func TestAudioEmptyFrame(t *testing.T) {
	ac, err := NewAudioChunker(400)
	require.NoError(t, err)
	assert.Nil(t, ac.Frames(nil))
	assert.Equal(t, uint16(0), ac.Seq(), "empty frame must not consume a seq")
}
