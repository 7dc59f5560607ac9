package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"S3Keep/internal/logging"
)

// Runner owns at most one active schedule per process. Replacing a schedule
// cancels the previous loop before starting the next one; the running flag is
// safe to read from any goroutine.
type Runner struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	cancel   context.CancelFunc
	done     chan struct{}
	running  atomic.Bool
}

func NewRunner() *Runner {
	return &Runner{
		interval: time.Minute,
		now:      time.Now,
	}
}

// Schedule replaces any active schedule and starts a background loop that
// invokes run each time the trigger computed from cadence and at passes.
// A failed run is logged; the schedule survives it.
func (r *Runner) Schedule(ctx context.Context, c Cadence, at string, run func(context.Context) error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done
	r.running.Store(true)

	next := Next(c, at, r.now())
	logging.Log.Info().Str("cadence", string(c)).Time("next_run", next).Msg("backup scheduled")

	go r.loop(ctx, done, c, at, next, run)
}

func (r *Runner) loop(ctx context.Context, done chan struct{}, c Cadence, at string, next time.Time, run func(context.Context) error) {
	defer close(done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := r.now()
			if now.Before(next) {
				continue
			}
			if err := run(ctx); err != nil {
				logging.Log.Error().Err(err).Msg("scheduled backup failed")
			}
			next = Next(c, at, now)
			logging.Log.Info().Time("next_run", next).Msg("next scheduled backup")
		}
	}
}

// Stop signals the loop to exit after its current tick. Idempotent.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Runner) stopLocked() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
		r.cancel = nil
		r.done = nil
	}
	r.running.Store(false)
}

func (r *Runner) Running() bool {
	return r.running.Load()
}
