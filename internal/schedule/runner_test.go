package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock lets tests move the runner's wall clock by hand.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func newTestRunner(clock *fakeClock) *Runner {
	r := NewRunner()
	r.interval = 2 * time.Millisecond
	r.now = clock.Now
	return r
}

func TestRunnerFiresAfterTrigger(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 2, 26, 1, 0, 0, 0, time.UTC)}
	r := newTestRunner(clock)
	defer r.Stop()

	var fired atomic.Int32
	r.Schedule(context.Background(), CadenceDaily, "02:00", func(ctx context.Context) error {
		fired.Add(1)
		return nil
	})
	if !r.Running() {
		t.Fatal("Running() = false after Schedule")
	}

	// Still before 02:00: nothing fires.
	time.Sleep(30 * time.Millisecond)
	if n := fired.Load(); n != 0 {
		t.Fatalf("fired %d times before the trigger", n)
	}

	clock.Set(time.Date(2025, 2, 26, 2, 1, 0, 0, time.UTC))
	waitFor(t, func() bool { return fired.Load() == 1 })

	// The next trigger is tomorrow; no double firing.
	time.Sleep(30 * time.Millisecond)
	if n := fired.Load(); n != 1 {
		t.Fatalf("fired %d times, want exactly 1", n)
	}
}

func TestRunnerSurvivesFailedRun(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 2, 26, 1, 0, 0, 0, time.UTC)}
	r := newTestRunner(clock)
	defer r.Stop()

	var fired atomic.Int32
	r.Schedule(context.Background(), CadenceDaily, "02:00", func(ctx context.Context) error {
		fired.Add(1)
		return context.DeadlineExceeded
	})

	clock.Set(time.Date(2025, 2, 26, 2, 1, 0, 0, time.UTC))
	waitFor(t, func() bool { return fired.Load() == 1 })
	if !r.Running() {
		t.Error("schedule did not survive a failed run")
	}

	clock.Set(time.Date(2025, 2, 27, 2, 1, 0, 0, time.UTC))
	waitFor(t, func() bool { return fired.Load() == 2 })
}

func TestRunnerReplacement(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 2, 26, 1, 0, 0, 0, time.UTC)}
	r := newTestRunner(clock)
	defer r.Stop()

	var daily, weekly atomic.Int32
	r.Schedule(context.Background(), CadenceDaily, "02:00", func(ctx context.Context) error {
		daily.Add(1)
		return nil
	})
	r.Schedule(context.Background(), CadenceWeekly, "02:00", func(ctx context.Context) error {
		weekly.Add(1)
		return nil
	})

	// Past the daily trigger and the Sunday trigger.
	clock.Set(time.Date(2025, 3, 2, 2, 1, 0, 0, time.UTC))
	waitFor(t, func() bool { return weekly.Load() == 1 })

	if n := daily.Load(); n != 0 {
		t.Errorf("replaced daily schedule fired %d times", n)
	}
	if !r.Running() {
		t.Error("Running() = false with an active schedule")
	}
}

func TestRunnerStop(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 2, 26, 1, 0, 0, 0, time.UTC)}
	r := newTestRunner(clock)

	var fired atomic.Int32
	r.Schedule(context.Background(), CadenceDaily, "02:00", func(ctx context.Context) error {
		fired.Add(1)
		return nil
	})
	r.Stop()
	if r.Running() {
		t.Error("Running() = true after Stop")
	}

	clock.Set(time.Date(2025, 2, 26, 2, 1, 0, 0, time.UTC))
	time.Sleep(30 * time.Millisecond)
	if n := fired.Load(); n != 0 {
		t.Errorf("stopped schedule fired %d times", n)
	}

	// Stop is idempotent.
	r.Stop()
	r.Stop()
}
