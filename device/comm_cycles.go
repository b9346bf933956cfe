package device

import (
	"errors"
	"fmt"

	"github.com/e7canasta/pendant-core/cyclemgr"
	"github.com/e7canasta/pendant-core/transmit"
)

// Comm cycle group: the chunk pump and the connection monitor.

func (d *Device) registerCommCycles() error {
	if _, err := d.mgr.RegisterCondition("data_transmission",
		d.shouldPump, cyclemgr.PriorityHigh, d.pumpTransmission); err != nil {
		return fmt.Errorf("register data_transmission: %w", err)
	}
	if _, err := d.mgr.RegisterInterval("connection_monitor",
		d.cfg.ConnCheckInterval, cyclemgr.PriorityCritical, d.monitorLink); err != nil {
		return fmt.Errorf("register connection_monitor: %w", err)
	}
	return nil
}

// shouldPump is the governing predicate of the chunk pump: a session
// in flight and a link to send on. Link loss mid-transfer is handled
// by the monitor cycle, not here.
func (d *Device) shouldPump() bool {
	return d.sessions.Active() && d.sink.IsReady()
}

// pumpTransmission moves at most one chunk per firing. One chunk per
// tick is the flow-control contract: the tick cadence, not the sink,
// paces the stream.
func (d *Device) pumpTransmission(ctx *cyclemgr.Ctx) error {
	err := d.sessions.Step()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, transmit.ErrIdle):
		return nil
	case errors.Is(err, transmit.ErrLinkLost):
		// The session already discarded its capture; the monitor
		// cycle handles the state transition on its next pass.
		return nil
	default:
		return err
	}
}

// monitorLink tracks sink readiness and drives the link-loss recovery:
// abort every in-flight transfer, reset the audio sequence space and
// switch the indicator pattern.
func (d *Device) monitorLink(ctx *cyclemgr.Ctx) error {
	up := LinkDown
	if d.sink.IsReady() {
		up = LinkUp
	}
	if up == d.link {
		return nil
	}

	d.link = up
	if up == LinkDown {
		d.sessions.AbortAll()
		if d.chunker != nil {
			d.chunker.Reset()
		}
		d.log.Warn("link lost, transfers aborted")
	} else {
		d.log.Info("link established")
	}
	d.switchLEDPattern(up)
	return nil
}
