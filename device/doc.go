// Package device wires the capture producers, transmission sessions
// and transport sink into cycle registrations on one scheduler.
//
// Device is the root object: it owns the cycle manager and all session
// state explicitly, so multiple independent instances can coexist and
// tests drive a device deterministically through Tick. Nothing in this
// package lives in file-scope state.
//
// The cycle groups mirror the firmware's layout, one authoritative
// variant per concern:
//
//   - Data cycles: PhotoCapture, PhotoRetry, AudioAccumulate,
//     AudioTransmit, VideoStream (disabled by default).
//   - Comm cycles: DataTransmission, ConnectionMonitor.
//   - Power cycles: BatteryUpdate.
//   - LED cycles: one pattern cycle per link state, exactly one
//     enabled at a time.
//
// Hardware stays outside: the camera and microphone come in as
// capture.Producer, the radio as transport.Sink, the battery gauge and
// LED as the small interfaces in status.go.
package device
