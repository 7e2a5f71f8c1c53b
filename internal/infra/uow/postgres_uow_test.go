//go:build unit

package uow

import (
	"context"
	"testing"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantTransient bool
		wantKind      booking.Kind
	}{
		{name: "nil stays nil", err: nil},
		{
			name:          "deadlock victim",
			err:           &pgconn.PgError{Code: pgerrcode.DeadlockDetected},
			wantTransient: true,
			wantKind:      booking.KindTransient,
		},
		{
			name:          "lock wait timeout wrapped by a repository",
			err:           infra.WrapRepoErr("failed to lock show seats", &pgconn.PgError{Code: pgerrcode.LockNotAvailable}),
			wantTransient: true,
			wantKind:      booking.KindTransient,
		},
		{
			name:          "request deadline",
			err:           errs.Wrap(context.DeadlineExceeded, "commit"),
			wantTransient: true,
			wantKind:      booking.KindTransient,
		},
		{
			name:     "domain error passes through",
			err:      errs.Wrap(booking.ErrSeatUnavailable, "seat A1"),
			wantKind: booking.KindSeatUnavailable,
		},
		{
			name:     "constraint violation is not retryable",
			err:      &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantKind: booking.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			assert.Equal(t, tt.wantTransient, errs.Is(got, booking.ErrTransient))
			assert.Equal(t, tt.wantKind, booking.KindOf(got))
		})
	}
}
