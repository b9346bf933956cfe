package wire

// Stream type bytes carried in data frames and end markers.
const (
	TypeAudio byte = 0x00
	TypePhoto byte = 0x01
	TypeVideo byte = 0x02
)

// Header sizes.
const (
	// FrameHeaderSize covers [seq_lo][seq_hi][type].
	FrameHeaderSize = 3

	// SubChunkHeaderSize covers [seq_lo][seq_hi][chunk_index][flags].
	SubChunkHeaderSize = 4

	// EndMarkerSize is the fixed size of the completion sentinel.
	EndMarkerSize = 3
)

// End marker sentinel bytes (both sequence bytes saturated).
const (
	EndMarkerLow  byte = 0xFF
	EndMarkerHigh byte = 0xFF
)

// FlagLastSubChunk marks the final sub-chunk of one logical frame.
const FlagLastSubChunk byte = 0x80

// UsableChunk returns the data-frame payload capacity for a transport
// with the given maximum payload size. Returns 0 if the transport
// cannot even fit the header.
func UsableChunk(transportMax int) int {
	if transportMax <= FrameHeaderSize {
		return 0
	}
	return transportMax - FrameHeaderSize
}

// UsableSubChunk returns the sub-chunk payload capacity for a transport
// with the given maximum payload size.
func UsableSubChunk(transportMax int) int {
	if transportMax <= SubChunkHeaderSize {
		return 0
	}
	return transportMax - SubChunkHeaderSize
}
