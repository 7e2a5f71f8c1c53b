package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/pkg/errs"
)

var ErrMaxRetriesExceeded = errs.New("operation failed after max retries")

type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// RetryTransient runs fn again while it fails with booking.ErrTransient.
// Each attempt is a fresh call, so fn must open its own transaction.
func RetryTransient[T any](ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := max(policy.MaxAttempts, 1)

	for attempt := 0; ; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if !errs.Is(err, booking.ErrTransient) {
			return zero, err
		}
		if attempt+1 >= attempts {
			if attempts > 1 {
				slog.Warn("transient failure persisted after retries",
					"attempts", attempt+1,
					"error", err.Error())
				return zero, errs.Mark(err, ErrMaxRetriesExceeded)
			}
			return zero, err
		}

		waitTime := calculateBackoff(attempt, policy.BaseDelay)
		slog.Warn("retrying after transient failure",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return zero, errs.Mark(ctx.Err(), booking.ErrTransient)
		case <-time.After(waitTime):
		}
	}
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to 63 bits
	return int64(uval) % n
}
