package device

import (
	"fmt"

	"github.com/e7canasta/pendant-core/cyclemgr"
	"github.com/sirupsen/logrus"
)

// Power cycle group: periodic battery gauge reads. Skipped entirely
// when no gauge is attached.

func (d *Device) registerPowerCycles() error {
	if d.gauge == nil {
		return nil
	}
	if _, err := d.mgr.RegisterInterval("battery_update",
		d.cfg.BatteryInterval, cyclemgr.PriorityLow, d.updateBattery); err != nil {
		return fmt.Errorf("register battery_update: %w", err)
	}
	return nil
}

func (d *Device) updateBattery(ctx *cyclemgr.Ctx) error {
	percent, state, err := d.gauge.Read()
	if err != nil {
		return fmt.Errorf("battery read: %w", err)
	}
	d.batteryPercent = percent
	d.batteryState = state
	d.log.WithFields(logrus.Fields{
		"percent": percent,
		"state":   state.String(),
	}).Debug("battery updated")
	return nil
}
