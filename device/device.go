package device

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/e7canasta/pendant-core/capture"
	"github.com/e7canasta/pendant-core/cyclemgr"
	"github.com/e7canasta/pendant-core/transmit"
	"github.com/e7canasta/pendant-core/transport"
	"github.com/e7canasta/pendant-core/wire"
)

// Deps are the hardware-facing collaborators of a Device. Camera and
// Sink are required; the rest are optional and their cycles are simply
// not registered when absent.
type Deps struct {
	Camera capture.Producer
	Mic    capture.Producer
	Sink   transport.Sink
	Gauge  BatteryGauge
	LED    LEDDriver
}

// Device is the root object of the pendant core. It owns the cycle
// manager and every piece of session state; nothing here lives in
// file-scope variables, so tests and simulators can run several
// devices side by side.
//
// All methods must be called from the single loop thread that drives
// Tick.
type Device struct {
	cfg  Config
	log  logrus.FieldLogger
	mgr  *cyclemgr.Manager
	sink transport.Sink

	camera capture.Producer
	mic    capture.Producer
	gauge  BatteryGauge
	led    LEDDriver

	sessions *transmit.Set
	chunker  *capture.AudioChunker
	ring     *capture.Ring

	// now is the logical time of the pass in flight, set by Tick
	// before the scheduler runs so condition predicates can consult
	// it without calling the wall clock.
	now time.Time

	link      LinkState
	capturing bool
	photoDone bool
	lastPhoto time.Time

	retryID     int
	retriesLeft int
	videoID     int

	batteryPercent int
	batteryState   ChargeState

	photosCaptured uint64
	photosFailed   uint64
	audioFramesOut uint64

	ledIDs map[LinkState]int
}

// New builds a device from its configuration and collaborators and
// registers every cycle group. Capturing starts disarmed; call
// StartCapture to begin taking photos.
func New(cfg Config, deps Deps, log logrus.FieldLogger) (*Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Camera == nil {
		return nil, fmt.Errorf("device: camera producer is required")
	}
	if deps.Sink == nil {
		return nil, fmt.Errorf("device: transport sink is required")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if deps.LED == nil {
		deps.LED = nopLED{}
	}

	d := &Device{
		cfg:     cfg,
		log:     log.WithField("component", "device"),
		sink:    deps.Sink,
		camera:  deps.Camera,
		mic:     deps.Mic,
		gauge:   deps.Gauge,
		led:     deps.LED,
		retryID: -1,
		videoID: -1,
		ledIDs:  map[LinkState]int{},
	}
	// The monitor cycle is edge-triggered; sample the starting state
	// here so the first real transition is seen as one.
	if deps.Sink.IsReady() {
		d.link = LinkUp
	}
	d.mgr = cyclemgr.New(
		cyclemgr.WithCapacity(cfg.CycleCapacity),
		cyclemgr.WithLogger(log),
	)
	d.sessions = transmit.NewSet(cfg.TransportMax,
		releaseFunc(deps.Camera.Release),
		releaseFunc(deps.Camera.Release),
		deps.Sink, log)

	if cfg.AudioEnabled && deps.Mic != nil {
		chunker, err := capture.NewAudioChunker(cfg.TransportMax)
		if err != nil {
			return nil, err
		}
		d.chunker = chunker
		d.ring = capture.NewRing(cfg.AudioRingSize)
	}

	if err := d.registerDataCycles(); err != nil {
		return nil, err
	}
	if err := d.registerCommCycles(); err != nil {
		return nil, err
	}
	if err := d.registerPowerCycles(); err != nil {
		return nil, err
	}
	if err := d.registerLEDCycles(); err != nil {
		return nil, err
	}
	return d, nil
}

// releaseFunc adapts a producer's release method to transmit.Releaser.
type releaseFunc func(*capture.Buffer)

func (f releaseFunc) Release(b *capture.Buffer) { f(b) }

// Tick runs one scheduler pass at the given logical time. The caller
// owns the cadence; simulators pass a synthetic clock.
func (d *Device) Tick(now time.Time) {
	d.now = now
	d.mgr.Update(now)
}

// StartCapture arms the photo pipeline. With a zero PhotoInterval the
// next eligible pass takes exactly one photo.
func (d *Device) StartCapture() {
	d.capturing = true
	d.photoDone = false
	d.lastPhoto = time.Time{}
	d.log.Info("capture armed")
}

// StopCapture disarms the photo pipeline. An in-flight transfer is
// left to finish on its own.
func (d *Device) StopCapture() {
	d.capturing = false
	d.disarmRetry()
	d.log.Info("capture disarmed")
}

// Capturing reports whether the photo pipeline is armed.
func (d *Device) Capturing() bool { return d.capturing }

// EnableVideo turns the video stream cycle on.
func (d *Device) EnableVideo() {
	d.mgr.SetEnabled(d.videoID, true)
}

// DisableVideo turns the video stream cycle off and discards any
// in-flight segment.
func (d *Device) DisableVideo() {
	d.mgr.SetEnabled(d.videoID, false)
	d.sessions.Session(wire.TypeVideo).Abort()
}

// Manager exposes the cycle manager for inspection and tuning.
func (d *Device) Manager() *cyclemgr.Manager { return d.mgr }

// Sessions exposes the transmission session set.
func (d *Device) Sessions() *transmit.Set { return d.sessions }

// Snapshot returns a point-in-time status of the device.
func (d *Device) Snapshot() Status {
	st := Status{
		Link:           d.link,
		BatteryPercent: d.batteryPercent,
		Battery:        d.batteryState,
		PhotosCaptured: d.photosCaptured,
		PhotosFailed:   d.photosFailed,
		AudioFramesOut: d.audioFramesOut,
		Scheduler:      d.mgr.AggregateStats(),
	}
	if d.ring != nil {
		st.AudioDropped = d.ring.Dropped
	}
	if d.sessions.Active() {
		st.SessionsActive = 1
	}
	return st
}

// beginTransfer hands a captured buffer to its session. The session
// takes ownership; on rejection the buffer goes straight back to the
// producer so release stays exactly-once.
func (d *Device) beginTransfer(buf *capture.Buffer) error {
	typ := wire.TypePhoto
	if buf.Type == wire.TypeVideo {
		typ = wire.TypeVideo
	}
	if err := d.sessions.Session(typ).Begin(buf); err != nil {
		if errors.Is(err, transmit.ErrSessionActive) {
			d.camera.Release(buf)
		}
		return fmt.Errorf("begin transfer: %w", err)
	}
	return nil
}
