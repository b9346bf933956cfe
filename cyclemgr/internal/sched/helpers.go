package sched

import "time"

// Convenience constructors for common cycle types. All of them enable
// the cycle immediately, matching how firmware modules register their
// work at boot.

// RegisterInterval registers an enabled interval cycle.
func (s *Scheduler) RegisterInterval(name string, interval time.Duration, priority Priority, execute func(*Ctx) error) (int, error) {
	return s.Register(Config{
		Name:     name,
		Mode:     ModeInterval,
		Priority: priority,
		Interval: interval,
		Execute:  execute,
		Enabled:  true,
	})
}

// RegisterTimeout registers an enabled one-shot timeout cycle. It
// fires once after the timeout elapses and self-retires to Completed.
func (s *Scheduler) RegisterTimeout(name string, timeout time.Duration, priority Priority, execute func(*Ctx) error) (int, error) {
	return s.Register(Config{
		Name:     name,
		Mode:     ModeTimeout,
		Priority: priority,
		Timeout:  timeout,
		Execute:  execute,
		Enabled:  true,
		OneShot:  true,
	})
}

// RegisterCondition registers an enabled condition cycle that fires on
// every pass while the predicate holds.
func (s *Scheduler) RegisterCondition(name string, condition func() bool, priority Priority, execute func(*Ctx) error) (int, error) {
	return s.Register(Config{
		Name:      name,
		Mode:      ModeCondition,
		Priority:  priority,
		Condition: condition,
		Execute:   execute,
		Enabled:   true,
	})
}

// RegisterPattern registers an enabled pattern cycle (blink codes and
// similar stepped outputs).
func (s *Scheduler) RegisterPattern(name string, pattern []PatternStep, priority Priority, execute func(*Ctx) error) (int, error) {
	return s.Register(Config{
		Name:     name,
		Mode:     ModePattern,
		Priority: priority,
		Pattern:  pattern,
		Execute:  execute,
		Enabled:  true,
	})
}

// RegisterBufferWrap registers an enabled cycle that runs on every
// pass to maintain a circular buffer.
func (s *Scheduler) RegisterBufferWrap(name string, priority Priority, execute func(*Ctx) error) (int, error) {
	return s.Register(Config{
		Name:     name,
		Mode:     ModeBufferWrap,
		Priority: priority,
		Execute:  execute,
		Enabled:  true,
	})
}
