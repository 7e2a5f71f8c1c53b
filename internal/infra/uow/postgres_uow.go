package uow

import (
	"context"
	"errors"
	"log/slog"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/infra/query"
	"seat-reservation/internal/infra/repository"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough because every row a command writes is locked first.
// Nothing is retried here; transient failures surface to the caller.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return classify(errs.Mark(err, errTransactionBegin))
	}

	tx := &pgTx{
		dbtx:  pgxTx,
		q:     u.q,
		locks: repository.NewLockTracker(),
	}

	err = fn(ctx, tx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	rollback(ctx, pgxTx)
	return classify(err)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return classify(errs.Mark(err, errTransactionBegin))
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return classify(err)
	}
	return classify(pgxTx.Commit(ctx))
}

// rollback uses a detached context so a cancelled request still releases its
// row locks promptly.
func rollback(ctx context.Context, tx pgx.Tx) {
	if rollbackErr := tx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindTransient) || infra.IsTransient(err) {
		return errs.Mark(err, booking.ErrTransient)
	}
	return err
}

type pgTx struct {
	dbtx  query.DBTX
	q     *query.Queries
	locks *repository.LockTracker

	// Lazy-initialized repositories
	eventRepo    shared.EventRepository
	showSeatRepo shared.ShowSeatRepository
	bookingRepo  shared.BookingRepository
	paymentRepo  shared.PaymentRepository
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository(t.q, t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) ShowSeats() shared.ShowSeatRepository {
	if t.showSeatRepo == nil {
		t.showSeatRepo = repository.NewShowSeatRepository(t.q, t.dbtx, t.locks)
	}
	return t.showSeatRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.q, t.dbtx, t.locks)
	}
	return t.bookingRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.q, t.dbtx, t.locks)
	}
	return t.paymentRepo
}
