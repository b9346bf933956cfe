package device

import (
	"fmt"

	"github.com/e7canasta/pendant-core/capture"
	"github.com/e7canasta/pendant-core/cyclemgr"
	"github.com/e7canasta/pendant-core/wire"
)

// Data cycle group: photo capture with bounded retry, audio
// accumulation and audio transmit. Video streaming is wired but stays
// disabled until a controller enables it.

func (d *Device) registerDataCycles() error {
	if _, err := d.mgr.RegisterCondition("photo_capture",
		d.shouldCapturePhoto, cyclemgr.PriorityHigh, d.capturePhoto); err != nil {
		return fmt.Errorf("register photo_capture: %w", err)
	}

	// The retry cycle exists from boot but stays disarmed until a
	// capture fails. Arming it resets the interval anchor, so the
	// first retry lands one retry interval after the failure.
	id, err := d.mgr.Register(cyclemgr.Config{
		Name:     "photo_retry",
		Mode:     cyclemgr.ModeInterval,
		Priority: cyclemgr.PriorityHigh,
		Interval: d.cfg.PhotoRetryInterval,
		Execute:  d.retryPhoto,
	})
	if err != nil {
		return fmt.Errorf("register photo_retry: %w", err)
	}
	d.retryID = id

	if d.ring != nil {
		if _, err := d.mgr.RegisterBufferWrap("audio_accumulate",
			cyclemgr.PriorityNormal, d.accumulateAudio); err != nil {
			return fmt.Errorf("register audio_accumulate: %w", err)
		}
		if _, err := d.mgr.RegisterCondition("audio_transmit",
			d.shouldTransmitAudio, cyclemgr.PriorityNormal, d.transmitAudio); err != nil {
			return fmt.Errorf("register audio_transmit: %w", err)
		}
	}

	// Video shares the photo pipeline shape but stays off until a
	// controller asks for a stream.
	vid, err := d.mgr.Register(cyclemgr.Config{
		Name:      "video_stream",
		Mode:      cyclemgr.ModeCondition,
		Priority:  cyclemgr.PriorityNormal,
		Condition: d.shouldStreamVideo,
		Execute:   d.streamVideo,
	})
	if err != nil {
		return fmt.Errorf("register video_stream: %w", err)
	}
	d.videoID = vid
	return nil
}

// shouldCapturePhoto is the governing predicate of the photo pipeline:
// armed, link up, no transfer in flight, no retry pending, and the
// capture slot reached. A zero interval means single-shot.
func (d *Device) shouldCapturePhoto() bool {
	if !d.capturing || !d.sink.IsReady() {
		return false
	}
	if d.sessions.Session(wire.TypePhoto).Active() {
		return false
	}
	if d.retryArmed() {
		return false
	}
	if d.cfg.PhotoInterval == 0 {
		return !d.photoDone
	}
	return d.lastPhoto.IsZero() || d.now.Sub(d.lastPhoto) >= d.cfg.PhotoInterval
}

func (d *Device) capturePhoto(ctx *cyclemgr.Ctx) error {
	buf, ok := d.camera.TryProduce()
	if !ok {
		// The slot is spent either way; a spent retry budget waits for
		// the next one instead of re-attempting every pass.
		d.lastPhoto = d.now
		d.photosFailed++
		d.armRetry()
		return fmt.Errorf("camera capture failed")
	}
	return d.finishPhoto(buf)
}

// retryPhoto re-attempts a failed capture on the retry interval until
// it succeeds or the budget runs out. Unlike the capture path it never
// arms another retry round.
func (d *Device) retryPhoto(ctx *cyclemgr.Ctx) error {
	if !d.capturing {
		d.disarmRetry()
		return nil
	}
	buf, ok := d.camera.TryProduce()
	if ok {
		d.disarmRetry()
		return d.finishPhoto(buf)
	}
	d.photosFailed++
	d.retriesLeft--
	if d.retriesLeft <= 0 {
		d.disarmRetry()
		if d.cfg.PhotoInterval == 0 {
			// Single-shot: the shot is forfeit, not re-attempted forever.
			d.photoDone = true
		}
		d.log.Warn("photo retry budget exhausted")
		return nil
	}
	return fmt.Errorf("camera capture failed, %d retries left", d.retriesLeft)
}

// finishPhoto accounts a successful capture and hands the buffer to
// the photo session.
func (d *Device) finishPhoto(buf *capture.Buffer) error {
	d.photosCaptured++
	d.lastPhoto = d.now
	if d.cfg.PhotoInterval == 0 {
		d.photoDone = true
	}
	return d.beginTransfer(buf)
}

func (d *Device) armRetry() {
	if d.cfg.PhotoRetryMax == 0 || d.retryID < 0 {
		return
	}
	d.retriesLeft = d.cfg.PhotoRetryMax
	d.mgr.SetEnabled(d.retryID, true)
}

func (d *Device) disarmRetry() {
	d.retriesLeft = 0
	if d.retryID >= 0 {
		d.mgr.SetEnabled(d.retryID, false)
	}
}

func (d *Device) retryArmed() bool {
	return d.retryID >= 0 && d.mgr.State(d.retryID) != cyclemgr.StateInactive
}

// accumulateAudio is the only reader of the microphone. It drains one
// frame per pass into the ring; the ring drops oldest bytes under
// pressure, so a stalled link costs freshness, never memory.
func (d *Device) accumulateAudio(ctx *cyclemgr.Ctx) error {
	buf, ok := d.mic.TryProduce()
	if !ok {
		return nil
	}
	d.ring.Write(buf.Data)
	d.mic.Release(buf)
	return nil
}

func (d *Device) shouldTransmitAudio() bool {
	return d.sink.IsReady() && d.ring.Len() >= d.cfg.AudioFrameSize
}

// transmitAudio sends one accumulated frame. Audio is fire-and-forget:
// the whole frame goes out in this pass, split into sub-chunks when it
// exceeds the transport payload, and a send failure drops the frame.
func (d *Device) transmitAudio(ctx *cyclemgr.Ctx) error {
	frame := make([]byte, d.cfg.AudioFrameSize)
	n := d.ring.Read(frame)
	units := d.chunker.Frames(frame[:n])
	for _, u := range units {
		if err := d.sink.Send(u); err != nil {
			return fmt.Errorf("send audio frame: %w", err)
		}
	}
	d.audioFramesOut++
	return nil
}

func (d *Device) shouldStreamVideo() bool {
	return d.sink.IsReady() && !d.sessions.Session(wire.TypeVideo).Active()
}

// streamVideo captures one video segment and hands it to the video
// session. Registered disabled; EnableVideo turns it on.
func (d *Device) streamVideo(ctx *cyclemgr.Ctx) error {
	buf, ok := d.camera.TryProduce()
	if !ok {
		return fmt.Errorf("video capture failed")
	}
	buf.Type = wire.TypeVideo
	return d.beginTransfer(buf)
}
