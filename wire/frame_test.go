package wire

import (
	"bytes"
	"testing"
)

// TestFrameLayout verifies the exact byte layout of a data frame.
func TestFrameLayout(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	data := EncodeFrame(0x0302, TypePhoto, payload)

	want := []byte{0x02, 0x03, 0x01, 0xDE, 0xAD, 0xBE, 0xEF}
	if !bytes.Equal(data, want) {
		t.Fatalf("frame bytes = % X, want % X", data, want)
	}
}

// TestFrameRoundTrip verifies encode→parse symmetry.
func TestFrameRoundTrip(t *testing.T) {
	data := EncodeFrame(42, TypeVideo, []byte("chunk"))

	f, err := ParseFrame(data)
	if err != nil {
		t.Fatalf("ParseFrame failed: %v", err)
	}
	if f.Seq != 42 || f.Type != TypeVideo || f.End {
		t.Errorf("parsed frame = %+v", f)
	}
	if string(f.Payload) != "chunk" {
		t.Errorf("payload = %q, want %q", f.Payload, "chunk")
	}
}

// TestEndMarker verifies the sentinel layout and its detection.
func TestEndMarker(t *testing.T) {
	for _, typ := range []byte{TypePhoto, TypeVideo} {
		data := EncodeEndMarker(typ)
		if !bytes.Equal(data, []byte{0xFF, 0xFF, typ}) {
			t.Fatalf("end marker = % X", data)
		}

		f, err := ParseFrame(data)
		if err != nil {
			t.Fatalf("ParseFrame failed: %v", err)
		}
		if !f.End || f.Type != typ || f.Payload != nil {
			t.Errorf("parsed end marker = %+v", f)
		}
	}
}

// TestSubChunkLayout verifies the micro-header layout including the
// last-fragment flag.
func TestSubChunkLayout(t *testing.T) {
	data := EncodeSubChunk(0x0102, 3, true, []byte{0xAA})

	want := []byte{0x02, 0x01, 0x03, 0x80, 0xAA}
	if !bytes.Equal(data, want) {
		t.Fatalf("sub-chunk bytes = % X, want % X", data, want)
	}

	c, err := ParseSubChunk(data)
	if err != nil {
		t.Fatalf("ParseSubChunk failed: %v", err)
	}
	if c.Seq != 0x0102 || c.Index != 3 || !c.Last {
		t.Errorf("parsed sub-chunk = %+v", c)
	}
	if !c.Last {
		t.Error("last flag lost in round trip")
	}

	middle, _ := ParseSubChunk(EncodeSubChunk(7, 0, false, []byte{1, 2}))
	if middle.Last {
		t.Error("flags 0x00 parsed as last fragment")
	}
}

// TestUsableSizes verifies the reserve-from-transport sizing policy.
func TestUsableSizes(t *testing.T) {
	if got := UsableChunk(400); got != 397 {
		t.Errorf("UsableChunk(400) = %d, want 397", got)
	}
	if got := UsableSubChunk(400); got != 396 {
		t.Errorf("UsableSubChunk(400) = %d, want 396", got)
	}
	if got := UsableChunk(3); got != 0 {
		t.Errorf("UsableChunk(3) = %d, want 0", got)
	}
}

// TestParseShortBuffers verifies header-size validation.
func TestParseShortBuffers(t *testing.T) {
	if _, err := ParseFrame([]byte{0x01, 0x02}); err != ErrShortFrame {
		t.Errorf("ParseFrame(short) err = %v", err)
	}
	if _, err := ParseSubChunk([]byte{0x01, 0x02, 0x03}); err != ErrShortSubChunk {
		t.Errorf("ParseSubChunk(short) err = %v", err)
	}
}
