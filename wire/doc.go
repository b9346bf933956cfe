// Package wire defines the binary frame formats exchanged between the
// pendant and a paired client over the radio link.
//
// # Frame Formats
//
// Three formats share the link, distinguished by context (which
// characteristic carries them) and by header shape:
//
// Data frame (photo/video/audio stream chunks):
//
//	[seq_lo:u8][seq_hi:u8][type:u8] payload...
//
// End marker (stream completion sentinel):
//
//	[0xFF][0xFF][type:u8]
//
// Audio sub-chunk (one oversized logical audio frame split at the
// producer boundary):
//
//	[seq_lo:u8][seq_hi:u8][chunk_index:u8][flags:u8] payload...
//
// Flags bit 0x80 marks the last sub-chunk of the logical frame.
//
// # Sizing Policy
//
// The transport has a negotiated maximum payload. Header bytes are
// reserved FROM that maximum, never added on top: a 400-byte transport
// carries at most 397 bytes of data-frame payload and 396 bytes of
// sub-chunk payload. UsableChunk and UsableSubChunk encode this policy.
//
// # Sequence Numbers
//
// Sequence numbers are 16-bit and wrap silently. A fresh session after
// link loss restarts at zero; receivers must not assume monotonic
// sequence numbers across link-loss boundaries. The Reassembler
// tolerates both conditions.
package wire
