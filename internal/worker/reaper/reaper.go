package reaper

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"seat-reservation/internal/infra/lease"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/pkg/metrics"
	"seat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reaper.go -destination=../../../tests/mock/reaper/reaper.go -package=reapermock

type Recorder interface {
	ObserveReaperRun(result string, expired, released int64, elapsed time.Duration)
}

type Config struct {
	Interval  time.Duration
	TTL       time.Duration
	BatchSize int
}

type RunResult struct {
	Expired  int64
	Released int64
	Batches  int
	Skipped  bool
}

// Reaper cancels Pending bookings older than the TTL and frees their seats,
// exactly as a user cancel would. Correctness rests on row locks and
// status-scoped updates; the lease only keeps replicas from doing the same
// work twice.
type Reaper struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	lease    lease.Lease
	recorder Recorder
	logger   *slog.Logger
	cfg      Config

	running atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(uow shared.UnitOfWork, clk clock.Clock, l lease.Lease, recorder Recorder, logger *slog.Logger, cfg Config) *Reaper {
	if l == nil {
		l = lease.NopLease{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reaper{
		uow:      uow,
		clock:    clk,
		lease:    l,
		recorder: recorder,
		logger:   logger.With("component", "reaper"),
		cfg:      cfg,
	}
}

// Start runs the reaper on every interval tick until Stop is called or ctx
// ends. Calling Start twice is a no-op.
func (r *Reaper) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.loop(ctx, r.done)
	r.logger.Info("reaper started", "interval", r.cfg.Interval, "ttl", r.cfg.TTL, "batch_size", r.cfg.BatchSize)
}

// Stop cancels the loop and waits for an in-flight run to roll back, or for
// ctx to end.
func (r *Reaper) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		r.logger.Info("reaper stopped")
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "reaper did not stop in time")
	}
}

func (r *Reaper) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Errors are logged inside; the next tick retries.
			_, _ = r.RunOnce(ctx)
		}
	}
}

// RunOnce performs one full pass. A pass that overlaps a previous one, or
// that loses the lease, is skipped.
func (r *Reaper) RunOnce(ctx context.Context) (RunResult, error) {
	if !r.running.CompareAndSwap(false, true) {
		r.logger.Warn("previous run still in progress, skipping")
		r.record(metrics.ReaperResultSkipped, RunResult{Skipped: true}, 0)
		return RunResult{Skipped: true}, nil
	}
	defer r.running.Store(false)

	token, ok, err := r.lease.Acquire(ctx)
	switch {
	case err != nil:
		r.logger.Warn("lease unavailable, running without it", "error", err.Error())
	case !ok:
		r.logger.Debug("lease held elsewhere, skipping")
		r.record(metrics.ReaperResultSkipped, RunResult{Skipped: true}, 0)
		return RunResult{Skipped: true}, nil
	default:
		defer func() {
			if err := r.lease.Release(context.WithoutCancel(ctx), token); err != nil {
				r.logger.Warn("failed to release lease", "error", err.Error())
			}
		}()
	}

	start := r.clock.Now()
	deadline := start.Add(-r.cfg.TTL)

	result, err := r.reap(ctx, deadline)
	elapsed := r.clock.Now().Sub(start)
	if err != nil {
		r.logger.Error("reaper run aborted",
			"error", err.Error(),
			"batches_committed", result.Batches,
			"expired", result.Expired,
			"released", result.Released)
		r.record(metrics.ReaperResultError, result, elapsed)
		return result, err
	}

	if result.Expired > 0 {
		r.logger.Info("expired bookings cancelled",
			"expired", result.Expired,
			"released", result.Released,
			"batches", result.Batches,
			"deadline", deadline)
	}
	r.record(metrics.ReaperResultOK, result, elapsed)
	return result, nil
}

func (r *Reaper) reap(ctx context.Context, deadline time.Time) (RunResult, error) {
	var result RunResult
	for {
		expired, released, selected, err := r.reapBatch(ctx, deadline)
		if err != nil {
			return result, err
		}
		if selected == 0 {
			return result, nil
		}
		result.Batches++
		result.Expired += expired
		result.Released += released
		if selected < r.cfg.BatchSize {
			return result, nil
		}
	}
}

// reapBatch handles one batch in one transaction: bookings first, then their
// seats in ascending id order.
func (r *Reaper) reapBatch(ctx context.Context, deadline time.Time) (expired, released int64, selected int, err error) {
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Bookings().LockExpiredPending(ctx, deadline, r.cfg.BatchSize)
		if err != nil {
			return err
		}
		selected = len(ids)
		if selected == 0 {
			return nil
		}

		if _, err := tx.ShowSeats().LockByBookings(ctx, ids); err != nil {
			return err
		}
		released, err = tx.ShowSeats().ReleaseForPendingBookings(ctx, ids)
		if err != nil {
			return err
		}

		var cancelled []uuid.UUID
		cancelled, err = tx.Bookings().CancelPending(ctx, ids, r.clock.Now())
		if err != nil {
			return err
		}
		expired = int64(len(cancelled))
		return nil
	})
	if err != nil {
		return 0, 0, 0, err
	}
	return expired, released, selected, nil
}

func (r *Reaper) record(result string, run RunResult, elapsed time.Duration) {
	if r.recorder == nil {
		return
	}
	r.recorder.ObserveReaperRun(result, run.Expired, run.Released, elapsed)
}
