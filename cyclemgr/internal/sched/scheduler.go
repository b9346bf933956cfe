package sched

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultCapacity bounds the cycle table when no explicit capacity is
// configured.
const DefaultCapacity = 32

// Scheduler owns a fixed-capacity table of registered cycles and runs
// them cooperatively: one Update pass evaluates every cycle in strict
// priority order and invokes the callbacks whose triggers fire.
//
// The scheduler is single-threaded by contract. Exactly one callback
// executes at a time; a callback that blocks stalls the whole pass,
// including higher-priority cycles queued for the next one. Callbacks
// must be short and non-blocking.
//
// Cycles are never removed. SetEnabled(false) is the only external
// cancellation mechanism; a disabled cycle keeps its id and stats.
type Scheduler struct {
	log logrus.FieldLogger

	cycles   []*cycle
	capacity int

	totalExecuted uint64
	totalTime     time.Duration
	lastUpdate    time.Time
}

// NewScheduler creates a scheduler with the given table capacity.
// Exported for the parent package's constructor.
func NewScheduler(capacity int, log logrus.FieldLogger) *Scheduler {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	return &Scheduler{
		log:      log,
		cycles:   make([]*cycle, 0, capacity),
		capacity: capacity,
	}
}

// Initialize clears the registry and manager statistics. Registered
// ids become invalid. Idempotent on a fresh scheduler.
func (s *Scheduler) Initialize() {
	s.cycles = s.cycles[:0]
	s.totalExecuted = 0
	s.totalTime = 0
	s.lastUpdate = time.Time{}
}

// Register adds a cycle to the table and returns its stable id.
// Returns -1 with ErrRegistryFull when the table is at capacity and
// -1 with ErrInvalidConfig when Name or Execute is missing.
//
// The cycle starts Active if cfg.Enabled, Inactive otherwise.
func (s *Scheduler) Register(cfg Config) (int, error) {
	if len(s.cycles) >= s.capacity {
		s.log.WithField("capacity", s.capacity).Warn("cycle registry full")
		return -1, ErrRegistryFull
	}
	if cfg.Name == "" || cfg.Execute == nil {
		return -1, ErrInvalidConfig
	}

	c := &cycle{
		id:    len(s.cycles),
		cfg:   cfg,
		state: StateInactive,
	}
	if cfg.Enabled {
		c.state = StateActive
	}
	s.cycles = append(s.cycles, c)

	s.log.WithFields(logrus.Fields{
		"cycle":    cfg.Name,
		"id":       c.id,
		"mode":     cfg.Mode.String(),
		"priority": cfg.Priority.String(),
	}).Debug("registered cycle")

	return c.id, nil
}

// Update runs one scheduler pass at the given logical time. Priority
// classes are walked from Critical to Background; within a class,
// cycles fire in registration order. No cycle runs twice in one pass.
//
// Error-state cycles remain eligible: a failed cycle is re-evaluated
// on the next pass unless its MaxErrors budget disabled it.
func (s *Scheduler) Update(now time.Time) {
	passStart := time.Now()

	for prio := PriorityCritical; prio <= PriorityBackground; prio++ {
		for _, c := range s.cycles {
			if c.cfg.Priority != prio || !c.eligible() {
				continue
			}
			if s.shouldFire(c, now) {
				s.execute(c, now)
			}
		}
	}

	s.totalTime += time.Since(passStart)
	s.lastUpdate = now
}

func (c *cycle) eligible() bool {
	if !c.cfg.Enabled {
		return false
	}
	return c.state == StateActive || c.state == StateError
}

// shouldFire evaluates the trigger for the cycle's mode. Timestamps
// compare against the logical pass time so tests can drive a
// simulated clock.
func (s *Scheduler) shouldFire(c *cycle, now time.Time) bool {
	switch c.cfg.Mode {
	case ModeInterval:
		if c.lastExecution.IsZero() {
			// First pass anchors the interval instead of firing
			// immediately.
			c.lastExecution = now
			return false
		}
		return now.Sub(c.lastExecution) >= c.cfg.Interval

	case ModeTimeout:
		if c.lastExecution.IsZero() {
			c.lastExecution = now
			return false
		}
		return now.Sub(c.lastExecution) >= c.cfg.Timeout

	case ModeCondition:
		return c.cfg.Condition != nil && c.cfg.Condition()

	case ModePattern:
		return s.advancePattern(c, now)

	case ModeBufferWrap:
		return true

	default:
		return false
	}
}

// advancePattern moves the step index once the current step's duration
// has elapsed. The cycle fires on every pass while a pattern is
// configured; step changes only alter what Ctx reports.
func (s *Scheduler) advancePattern(c *cycle, now time.Time) bool {
	if len(c.cfg.Pattern) == 0 {
		return false
	}
	if c.patternStepStart.IsZero() {
		c.patternStepStart = now
	}
	step := c.cfg.Pattern[c.patternStep]
	if now.Sub(c.patternStepStart) >= step.Duration {
		c.patternStep = (c.patternStep + 1) % len(c.cfg.Pattern)
		c.patternStepStart = now
	}
	return true
}

// execute invokes the callback and updates runtime statistics. A
// malfunctioning callback degrades only its own cycle; the scheduler
// itself never aborts the pass.
func (s *Scheduler) execute(c *cycle, now time.Time) {
	ctx := &Ctx{
		ID:        c.id,
		Now:       now,
		Data:      c.cfg.Context,
		StepIndex: c.patternStep,
	}
	if len(c.cfg.Pattern) > 0 {
		ctx.Step = c.cfg.Pattern[c.patternStep]
	}

	start := time.Now()
	err := c.cfg.Execute(ctx)
	elapsed := time.Since(start)

	// A failed firing still consumes the slot; an erroring interval
	// cycle re-fires one interval later, not on the next pass.
	c.lastExecution = now

	if err != nil {
		c.errorCount++
		c.consecErrors++
		c.state = StateError

		s.log.WithFields(logrus.Fields{
			"cycle":  c.cfg.Name,
			"errors": c.errorCount,
		}).WithError(err).Warn("cycle execution failed")

		if c.cfg.OnError != nil {
			c.cfg.OnError(err)
		}
		if c.cfg.MaxErrors > 0 && c.consecErrors >= c.cfg.MaxErrors {
			c.cfg.Enabled = false
			s.log.WithFields(logrus.Fields{
				"cycle":      c.cfg.Name,
				"max_errors": c.cfg.MaxErrors,
			}).Warn("cycle disabled after repeated failures")
		}
		return
	}

	c.executionCount++
	c.consecErrors = 0
	c.totalExecTime += elapsed
	if elapsed > c.maxExecTime {
		c.maxExecTime = elapsed
	}
	s.totalExecuted++

	if c.cfg.OneShot {
		c.state = StateCompleted
	} else if c.state == StateError {
		c.state = StateActive
	}
}

// SetEnabled toggles scheduling for a cycle without touching its
// statistics. Unknown ids are ignored.
func (s *Scheduler) SetEnabled(id int, enabled bool) {
	c := s.byID(id)
	if c == nil {
		return
	}
	c.cfg.Enabled = enabled
	if enabled && c.state == StateInactive {
		c.state = StateActive
		// Re-enabling restarts the clock: the next firing is one full
		// interval (or timeout) after the next pass, not immediately.
		c.lastExecution = time.Time{}
	} else if !enabled {
		c.state = StateInactive
	}
}

// SetPaused pauses or resumes a cycle. Resuming only reactivates
// cycles that are still enabled.
func (s *Scheduler) SetPaused(id int, paused bool) {
	c := s.byID(id)
	if c == nil {
		return
	}
	if paused {
		c.state = StatePaused
	} else if c.cfg.Enabled {
		c.state = StateActive
	}
}

// State returns the runtime state of a cycle, StateInactive for
// unknown ids.
func (s *Scheduler) State(id int) State {
	c := s.byID(id)
	if c == nil {
		return StateInactive
	}
	return c.state
}

// Stats returns a snapshot of a cycle's runtime statistics.
func (s *Scheduler) Stats(id int) (Runtime, bool) {
	c := s.byID(id)
	if c == nil {
		return Runtime{}, false
	}
	return Runtime{
		State:          c.state,
		LastExecution:  c.lastExecution,
		ExecutionCount: c.executionCount,
		ErrorCount:     c.errorCount,
		TotalExecTime:  c.totalExecTime,
		MaxExecTime:    c.maxExecTime,
		PatternStep:    c.patternStep,
	}, true
}

// ResetStats zeroes a cycle's counters without touching its state.
func (s *Scheduler) ResetStats(id int) {
	c := s.byID(id)
	if c == nil {
		return
	}
	c.executionCount = 0
	c.errorCount = 0
	c.consecErrors = 0
	c.totalExecTime = 0
	c.maxExecTime = 0
}

// Count returns the number of registered cycles.
func (s *Scheduler) Count() int { return len(s.cycles) }

// Capacity returns the table capacity.
func (s *Scheduler) Capacity() int { return s.capacity }

// ManagerStats is an aggregate snapshot across all cycles.
type ManagerStats struct {
	Cycles        int
	Capacity      int
	TotalExecuted uint64
	TotalTime     time.Duration
	LastUpdate    time.Time
}

// AggregateStats returns manager-level statistics.
func (s *Scheduler) AggregateStats() ManagerStats {
	return ManagerStats{
		Cycles:        len(s.cycles),
		Capacity:      s.capacity,
		TotalExecuted: s.totalExecuted,
		TotalTime:     s.totalTime,
		LastUpdate:    s.lastUpdate,
	}
}

// LogSummary writes one log line per cycle, mirroring the firmware's
// serial stats dump.
func (s *Scheduler) LogSummary() {
	s.log.WithFields(logrus.Fields{
		"cycles":         len(s.cycles),
		"total_executed": s.totalExecuted,
		"total_time":     s.totalTime,
	}).Info("cycle manager statistics")

	for _, c := range s.cycles {
		s.log.WithFields(logrus.Fields{
			"cycle":      c.cfg.Name,
			"state":      c.state.String(),
			"executions": c.executionCount,
			"errors":     c.errorCount,
			"max_exec":   c.maxExecTime,
		}).Info("cycle summary")
	}
}

func (s *Scheduler) byID(id int) *cycle {
	if id < 0 || id >= len(s.cycles) {
		return nil
	}
	return s.cycles[id]
}
