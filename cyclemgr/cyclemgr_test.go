package cyclemgr_test

import (
	"testing"
	"time"

	"github.com/e7canasta/pendant-core/cyclemgr"
)

// TestPublicAPISurface exercises the package through its public
// contract only: construction, convenience registration, update pass,
// stats access.
func TestPublicAPISurface(t *testing.T) {
	mgr := cyclemgr.New(cyclemgr.WithCapacity(4))

	fires := 0
	id, err := mgr.RegisterCondition("always", func() bool { return true },
		cyclemgr.PriorityHigh, func(ctx *cyclemgr.Ctx) error {
			fires++
			return nil
		})
	if err != nil {
		t.Fatalf("RegisterCondition failed: %v", err)
	}

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mgr.Update(now)
	mgr.Update(now.Add(time.Millisecond))

	if fires != 2 {
		t.Fatalf("fired %d times, want 2", fires)
	}

	rt, ok := mgr.Stats(id)
	if !ok {
		t.Fatal("Stats did not resolve id")
	}
	if rt.State != cyclemgr.StateActive || rt.ExecutionCount != 2 {
		t.Fatalf("runtime = %+v", rt)
	}

	agg := mgr.AggregateStats()
	if agg.Cycles != 1 || agg.TotalExecuted != 2 {
		t.Fatalf("aggregate = %+v", agg)
	}
}

// TestOpaqueContext verifies per-cycle state travels through Ctx.Data
// instead of hidden globals.
func TestOpaqueContext(t *testing.T) {
	mgr := cyclemgr.New()

	type retryState struct{ attempts int }
	st := &retryState{}

	_, err := mgr.Register(cyclemgr.Config{
		Name:     "retry",
		Mode:     cyclemgr.ModeBufferWrap,
		Priority: cyclemgr.PriorityNormal,
		Context:  st,
		Execute: func(ctx *cyclemgr.Ctx) error {
			ctx.Data.(*retryState).attempts++
			return nil
		},
		Enabled: true,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	now := time.Now()
	for i := 0; i < 3; i++ {
		mgr.Update(now.Add(time.Duration(i) * time.Millisecond))
	}
	if st.attempts != 3 {
		t.Fatalf("attempts = %d, want 3", st.attempts)
	}
}
