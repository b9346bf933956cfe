// Package capture defines the producer boundary between the streaming
// core and the camera/microphone drivers.
//
// The drivers themselves (pixel formats, DMA, codec internals) live
// outside this module. A driver integrates by implementing Producer:
// TryProduce yields a ready Buffer when the hardware has one, and
// Release returns buffer ownership once the transmission layer is done
// with it — exactly once, on both the completion and abort paths.
//
// Audio framing is a producer-side concern: one encoded audio frame
// that exceeds the usable transport payload is split here into
// sub-chunks with the 4-byte micro-header, never inside the
// transmission session. AudioChunker implements that split.
//
// SimCamera and SimMicrophone are host-side stand-ins for development
// and tests. They tag every buffer with a CRC16/Modbus checksum so
// end-to-end tests can verify reassembled payloads bit-exactly.
package capture
