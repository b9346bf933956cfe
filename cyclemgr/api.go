package cyclemgr

import "github.com/e7canasta/pendant-core/cyclemgr/internal/sched"

// Public API - re-export internal types as stable contract

// Mode selects the trigger semantics of a cycle.
type Mode = sched.Mode

const (
	ModeInterval   = sched.ModeInterval
	ModeTimeout    = sched.ModeTimeout
	ModeCondition  = sched.ModeCondition
	ModePattern    = sched.ModePattern
	ModeBufferWrap = sched.ModeBufferWrap
)

// Priority strictly orders execution within one scheduler pass.
type Priority = sched.Priority

const (
	PriorityCritical   = sched.PriorityCritical
	PriorityHigh       = sched.PriorityHigh
	PriorityNormal     = sched.PriorityNormal
	PriorityLow        = sched.PriorityLow
	PriorityBackground = sched.PriorityBackground
)

// State is the runtime state of a cycle.
type State = sched.State

const (
	StateInactive  = sched.StateInactive
	StateActive    = sched.StateActive
	StatePaused    = sched.StatePaused
	StateError     = sched.StateError
	StateCompleted = sched.StateCompleted
)

// Config describes a cycle at registration time.
type Config = sched.Config

// Ctx is handed to a cycle's callback on every firing.
type Ctx = sched.Ctx

// PatternStep is one step of a pattern cycle.
type PatternStep = sched.PatternStep

// Runtime is a snapshot of a cycle's runtime statistics.
type Runtime = sched.Runtime

// ManagerStats is an aggregate snapshot across all cycles.
type ManagerStats = sched.ManagerStats

// Manager owns the cycle table and runs the cooperative passes.
type Manager = sched.Scheduler

// DefaultCapacity bounds the cycle table when no explicit capacity is
// configured.
const DefaultCapacity = sched.DefaultCapacity

// Public API errors - re-export internal errors as stable contract
var (
	ErrRegistryFull  = sched.ErrRegistryFull
	ErrInvalidConfig = sched.ErrInvalidConfig
)
