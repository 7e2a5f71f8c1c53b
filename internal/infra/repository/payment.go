package repository

import (
	"context"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/infra/query"
	"seat-reservation/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	InsertPayment(ctx context.Context, db query.DBTX, arg query.InsertPaymentParams) error
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      query.DBTX
	locks   *LockTracker
}

func NewPaymentRepository(queries PaymentWriteQueries, db query.DBTX, locks *LockTracker) *PaymentRepository {
	return &PaymentRepository{queries: queries, db: db, locks: locks}
}

func (r *PaymentRepository) Create(ctx context.Context, p *booking.Payment) error {
	if err := r.locks.requireBookings([]uuid.UUID{p.BookingID()}); err != nil {
		return err
	}
	if err := r.queries.InsertPayment(ctx, r.db, converter.PaymentToInsertParams(p)); err != nil {
		return infra.WrapRepoErr("failed to insert payment", err)
	}
	return nil
}
