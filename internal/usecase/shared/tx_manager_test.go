//go:build unit

package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transient(msg string) error {
	return errs.Mark(errors.New(msg), booking.ErrTransient)
}

func TestRetryTransient(t *testing.T) {
	ctx := context.Background()
	policy := shared.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}

	t.Run("first attempt succeeds", func(t *testing.T) {
		calls := 0
		got, err := shared.RetryTransient(ctx, policy, func(context.Context) (string, error) {
			calls++
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 1, calls)
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		calls := 0
		got, err := shared.RetryTransient(ctx, policy, func(context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, transient("deadlock")
			}
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 3, calls)
	})

	t.Run("domain failure is returned at once", func(t *testing.T) {
		calls := 0
		_, err := shared.RetryTransient(ctx, policy, func(context.Context) (int, error) {
			calls++
			return 0, errs.Wrap(booking.ErrSeatUnavailable, "seat taken")
		})
		assert.True(t, errs.Is(err, booking.ErrSeatUnavailable))
		assert.Equal(t, 1, calls)
	})

	t.Run("exhausted retries stay transient", func(t *testing.T) {
		calls := 0
		_, err := shared.RetryTransient(ctx, policy, func(context.Context) (int, error) {
			calls++
			return 0, transient("lock timeout")
		})
		assert.Equal(t, 3, calls)
		assert.True(t, errs.Is(err, shared.ErrMaxRetriesExceeded))
		assert.Equal(t, booking.KindTransient, booking.KindOf(err))
	})

	t.Run("single attempt policy", func(t *testing.T) {
		calls := 0
		_, err := shared.RetryTransient(ctx, shared.RetryPolicy{}, func(context.Context) (int, error) {
			calls++
			return 0, transient("deadlock")
		})
		assert.Equal(t, 1, calls)
		assert.False(t, errs.Is(err, shared.ErrMaxRetriesExceeded))
		assert.True(t, errs.Is(err, booking.ErrTransient))
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		slow := shared.RetryPolicy{MaxAttempts: 5, BaseDelay: time.Hour}
		calls := 0
		_, err := shared.RetryTransient(cctx, slow, func(context.Context) (int, error) {
			calls++
			cancel()
			return 0, transient("deadlock")
		})
		assert.Equal(t, 1, calls)
		assert.True(t, errs.Is(err, context.Canceled))
		assert.True(t, errs.Is(err, booking.ErrTransient))
	})
}
