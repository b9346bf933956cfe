// Package cyclemgr provides priority-ordered cooperative scheduling
// for the pendant's main loop.
//
// # Overview
//
// The device has no RTOS: all work happens on one logical thread
// driven by a polled loop. The cycle manager owns a fixed-capacity
// table of registered Cycles; each Update pass evaluates all cycles in
// strict priority order (Critical → Background) and runs those whose
// trigger fires. The key design principle is:
//
//	"Callbacks are short. A blocking callback stalls everything."
//
// # Basic Usage
//
// Create a manager and register cycles:
//
//	mgr := cyclemgr.New()
//
//	id, err := mgr.RegisterInterval("BatteryUpdate", 60*time.Second,
//	    cyclemgr.PriorityLow, func(ctx *cyclemgr.Ctx) error {
//	        return gauge.Refresh()
//	    })
//
//	for {
//	    mgr.Update(time.Now())
//	    time.Sleep(time.Millisecond)
//	}
//
// # Trigger Modes
//
//   - Interval: fires when the interval has elapsed since the last
//     execution.
//   - Timeout: fires after the timeout; one-shot cycles self-retire
//     to Completed.
//   - Condition: fires every pass the predicate returns true.
//   - Pattern: fires every pass while active; the step index advances
//     on each step's (possibly non-uniform) duration.
//   - BufferWrap: always eligible, for circular-buffer maintenance.
//
// # Failure Isolation
//
// Callbacks signal failure by returning an error, never by panicking.
// A failed cycle is marked Error, its error count grows and its
// optional OnError handler runs — and it stays scheduled. The manager
// never aborts the loop because one callback misbehaves. Callers that
// want "stop after N failures" set Config.MaxErrors or disable the
// cycle from the handler.
//
// # Determinism
//
// Update takes the pass time explicitly, so tests drive a simulated
// clock and observe exact firing counts.
package cyclemgr
