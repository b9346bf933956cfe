package capture

import (
	"errors"

	"github.com/sigurn/crc16"
)

// ErrDoubleRelease reports a buffer released more than once. The
// transmission layer must release exactly once across the completion
// and abort paths; a double release is a lifecycle bug upstream.
var ErrDoubleRelease = errors.New("capture: buffer already released")

// modbusTable is shared by all checksum computations.
var modbusTable = crc16.MakeTable(crc16.CRC16_MODBUS)

// Checksum returns the CRC16/Modbus checksum of data. Simulated
// producers tag buffers with it so tests can verify reassembly.
func Checksum(data []byte) uint16 {
	return crc16.Checksum(data, modbusTable)
}

// Buffer is one captured payload. While a transmission session is
// active the session is the buffer's sole owner; ownership returns to
// the producer through Release.
type Buffer struct {
	// Data is the captured payload.
	Data []byte
	// Type is the wire stream type this capture belongs to.
	Type byte
	// Checksum is the CRC16/Modbus of Data, for end-to-end checks.
	Checksum uint16

	released bool
}

// Len returns the payload length.
func (b *Buffer) Len() int { return len(b.Data) }

// MarkReleased flips the release-once guard. Producer implementations
// call it from Release; a second call returns ErrDoubleRelease.
func (b *Buffer) MarkReleased() error {
	if b.released {
		return ErrDoubleRelease
	}
	b.released = true
	return nil
}

// Released reports whether the buffer has been returned to its
// producer.
func (b *Buffer) Released() bool { return b.released }

// Producer is the capture side of the boundary: a camera snapshot or
// an audio sample block on demand.
type Producer interface {
	// TryProduce yields a ready buffer, or false when the hardware
	// has nothing. Never blocks.
	TryProduce() (*Buffer, bool)

	// Release returns buffer ownership to the producer. Safe to call
	// from the scheduler thread only.
	Release(b *Buffer)
}
