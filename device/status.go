package device

import "github.com/e7canasta/pendant-core/cyclemgr"

// ChargeState is the gauge's coarse power condition.
type ChargeState int

const (
	Discharging ChargeState = iota
	Charging
	Full
)

func (s ChargeState) String() string {
	switch s {
	case Charging:
		return "charging"
	case Full:
		return "full"
	default:
		return "discharging"
	}
}

// BatteryGauge reads the power source. Implementations are free to
// block briefly (an I2C read), never longer.
type BatteryGauge interface {
	// Read returns the state of charge in percent and the charge state.
	Read() (percent int, state ChargeState, err error)
}

// LEDDriver drives the status indicator. SetLevel takes 0 (off) to
// 255 (full).
type LEDDriver interface {
	SetLevel(level uint8)
}

// nopLED stands in when no indicator is attached.
type nopLED struct{}

func (nopLED) SetLevel(uint8) {}

// LinkState is the device's view of the transport link.
type LinkState int

const (
	LinkDown LinkState = iota
	LinkUp
)

func (s LinkState) String() string {
	if s == LinkUp {
		return "up"
	}
	return "down"
}

// Status is a point-in-time snapshot of the device, safe to log or
// serve. Populated by Snapshot, never mutated in place.
type Status struct {
	Link           LinkState
	BatteryPercent int
	Battery        ChargeState
	PhotosCaptured uint64
	PhotosFailed   uint64
	AudioFramesOut uint64
	AudioDropped   uint64
	SessionsActive int
	Scheduler      cyclemgr.ManagerStats
}
