//go:build unit

package infra_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"seat-reservation/internal/infra"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: infra.KindForeignKeyViolated},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: infra.KindTransient},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: infra.KindTransient},
		{name: "lock timeout", err: &pgconn.PgError{Code: pgerrcode.LockNotAvailable}, want: infra.KindTransient},
		{name: "statement timeout", err: &pgconn.PgError{Code: pgerrcode.QueryCanceled}, want: infra.KindTransient},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: infra.KindTransient},
		{name: "deadline exceeded", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: infra.KindTransient},
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("boom"), want: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, infra.Classify(tc.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	cause := &pgconn.PgError{Code: pgerrcode.DeadlockDetected, Message: "deadlock detected"}

	err := infra.WrapRepoErr("failed to lock show seats", cause)

	assert.True(t, infra.IsKind(err, infra.KindTransient))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Contains(t, err.Error(), "failed to lock show seats")

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr), "driver error must stay reachable")
	assert.Equal(t, pgerrcode.DeadlockDetected, pgErr.Code)
}

func TestNewNotFound(t *testing.T) {
	err := infra.NewNotFound("booking x")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Equal(t, "NOT_FOUND: booking x", err.Error())
}
