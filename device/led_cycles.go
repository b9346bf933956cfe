package device

import (
	"fmt"
	"time"

	"github.com/e7canasta/pendant-core/cyclemgr"
)

// LED cycle group: one blink pattern per link state, exactly one
// enabled at a time. The patterns match the firmware codes: a slow
// even blink while searching for a host, a short heartbeat once
// connected.

func (d *Device) registerLEDCycles() error {
	patterns := []struct {
		state LinkState
		name  string
		steps []cyclemgr.PatternStep
	}{
		{LinkDown, "led_searching", []cyclemgr.PatternStep{
			{Duration: 500 * time.Millisecond, Value: 64, Active: true},
			{Duration: 500 * time.Millisecond},
		}},
		{LinkUp, "led_heartbeat", []cyclemgr.PatternStep{
			{Duration: 100 * time.Millisecond, Value: 255, Active: true},
			{Duration: 1900 * time.Millisecond},
		}},
	}

	for _, p := range patterns {
		id, err := d.mgr.Register(cyclemgr.Config{
			Name:     p.name,
			Mode:     cyclemgr.ModePattern,
			Priority: cyclemgr.PriorityBackground,
			Pattern:  p.steps,
			Execute:  d.driveLED,
			Enabled:  p.state == d.link,
		})
		if err != nil {
			return fmt.Errorf("register %s: %w", p.name, err)
		}
		d.ledIDs[p.state] = id
	}
	return nil
}

func (d *Device) driveLED(ctx *cyclemgr.Ctx) error {
	if ctx.Step.Active {
		d.led.SetLevel(ctx.Step.Value)
	} else {
		d.led.SetLevel(0)
	}
	return nil
}

func (d *Device) switchLEDPattern(state LinkState) {
	for s, id := range d.ledIDs {
		d.mgr.SetEnabled(id, s == state)
	}
}
