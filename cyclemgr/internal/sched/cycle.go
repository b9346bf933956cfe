// Package sched implements the cooperative cycle scheduler.
//
// This package is INTERNAL - clients MUST use the public API in the
// parent package. Reason: allows internal refactoring without breaking
// changes.
package sched

import (
	"errors"
	"time"
)

// Public errors - re-exported by the parent package.
var (
	ErrRegistryFull  = errors.New("cyclemgr: cycle registry is full")
	ErrInvalidConfig = errors.New("cyclemgr: cycle config missing name or execute")
)

// Mode selects the trigger semantics of a cycle.
type Mode int

const (
	// ModeInterval fires when the configured interval has elapsed
	// since the last execution.
	ModeInterval Mode = iota
	// ModeTimeout fires once the configured timeout has elapsed;
	// combined with OneShot it self-retires after the first firing.
	ModeTimeout
	// ModeCondition fires on every scheduler pass while the predicate
	// returns true.
	ModeCondition
	// ModePattern fires on every pass while a step pattern is active,
	// advancing the step index on each step's duration. Supports
	// non-uniform step durations (blink codes).
	ModePattern
	// ModeBufferWrap is always eligible; used by cycles that own a
	// circular buffer and must run every pass.
	ModeBufferWrap
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeInterval:
		return "INTERVAL"
	case ModeTimeout:
		return "TIMEOUT"
	case ModeCondition:
		return "CONDITION"
	case ModePattern:
		return "PATTERN"
	case ModeBufferWrap:
		return "BUFFER_WRAP"
	default:
		return "UNKNOWN"
	}
}

// Priority strictly orders execution within one scheduler pass.
type Priority int

const (
	PriorityCritical   Priority = iota // safety checks, LED updates
	PriorityHigh                       // radio link, audio
	PriorityNormal                     // photos, video
	PriorityLow                        // statistics, cleanup
	PriorityBackground                 // history, logging
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "CRITICAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityNormal:
		return "NORMAL"
	case PriorityLow:
		return "LOW"
	case PriorityBackground:
		return "BACKGROUND"
	default:
		return "UNKNOWN"
	}
}

// State is the runtime state of a cycle.
type State int

const (
	StateInactive State = iota
	StateActive
	StatePaused
	StateError
	StateCompleted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "INACTIVE"
	case StateActive:
		return "ACTIVE"
	case StatePaused:
		return "PAUSED"
	case StateError:
		return "ERROR"
	case StateCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// PatternStep is one step of a pattern cycle.
type PatternStep struct {
	Duration time.Duration
	Value    uint8
	Active   bool
}

// Ctx is handed to a cycle's callback on every firing. It carries the
// per-cycle opaque state so callbacks do not need hidden globals.
type Ctx struct {
	// ID of the firing cycle.
	ID int
	// Now is the scheduler's logical time for this pass.
	Now time.Time
	// Data is the opaque per-cycle state from Config.Context.
	Data any
	// StepIndex and Step describe the current pattern step; zero
	// values for non-pattern cycles.
	StepIndex int
	Step      PatternStep
}

// Config describes a cycle at registration time. Priority and Mode are
// immutable afterwards; only Enabled, pause state and runtime stats
// mutate.
type Config struct {
	// Name is diagnostic only, required.
	Name     string
	Mode     Mode
	Priority Priority

	// Interval for ModeInterval, Timeout for ModeTimeout.
	Interval time.Duration
	Timeout  time.Duration

	// Condition predicate for ModeCondition.
	Condition func() bool

	// Execute runs when the trigger fires, required. A non-nil return
	// marks the cycle errored; the scheduler never aborts the loop on
	// a callback failure.
	Execute func(ctx *Ctx) error

	// OnError runs after a failed execution, optional.
	OnError func(err error)

	// Pattern steps for ModePattern.
	Pattern []PatternStep

	// Context is opaque per-cycle state surfaced through Ctx.Data.
	Context any

	Enabled bool
	OneShot bool

	// MaxErrors disables the cycle after that many consecutive
	// failures. Zero keeps the cycle retried every pass indefinitely.
	MaxErrors int
}

// Runtime is a snapshot of a cycle's runtime statistics.
type Runtime struct {
	State          State
	LastExecution  time.Time
	ExecutionCount uint64
	ErrorCount     uint64
	TotalExecTime  time.Duration
	MaxExecTime    time.Duration
	PatternStep    int
}

// cycle pairs immutable config with mutable runtime state.
type cycle struct {
	id  int
	cfg Config

	state          State
	lastExecution  time.Time
	executionCount uint64
	errorCount     uint64
	consecErrors   int
	totalExecTime  time.Duration
	maxExecTime    time.Duration

	patternStep      int
	patternStepStart time.Time
}
