package shared

import (
	"context"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra/query"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: read-committed transaction for write operations. Transient
	// failures are returned marked with booking.ErrTransient and never retried here.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

type Tx interface {
	Events() EventRepository
	ShowSeats() ShowSeatRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
}

type EventRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ShowSeatRepository interface {
	LockForEvent(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) ([]*booking.ShowSeat, error)
	LockByBookings(ctx context.Context, bookingIDs []uuid.UUID) ([]*booking.ShowSeat, error)
	SaveStatus(ctx context.Context, seats []*booking.ShowSeat, from ...booking.SeatStatus) error
	ReleaseForPendingBookings(ctx context.Context, bookingIDs []uuid.UUID) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking, seats []*booking.ShowSeat) error
	LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	LockExpiredPending(ctx context.Context, deadline time.Time, limit int) ([]uuid.UUID, error)
	SaveStatus(ctx context.Context, b *booking.Booking, from booking.Status) error
	CancelPending(ctx context.Context, ids []uuid.UUID, at time.Time) ([]uuid.UUID, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *booking.Payment) error
}
