package repository

import (
	"context"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/infra/query"
	"seat-reservation/internal/infra/repository/converter"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db query.DBTX, arg query.InsertBookingParams) error
	InsertBookingDetails(ctx context.Context, db query.DBTX, bookingID uuid.UUID, showSeatIDs []uuid.UUID) (int64, error)
	LockBooking(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Booking, error)
	LockExpiredPendingBookings(ctx context.Context, db query.DBTX, deadline time.Time, limit int32) ([]uuid.UUID, error)
	UpdateBookingStatus(ctx context.Context, db query.DBTX, arg query.UpdateBookingStatusParams) (int64, error)
	CancelPendingBookings(ctx context.Context, db query.DBTX, ids []uuid.UUID, updatedAt time.Time) ([]uuid.UUID, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      query.DBTX
	locks   *LockTracker
}

func NewBookingRepository(queries BookingWriteQueries, db query.DBTX, locks *LockTracker) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
		locks:   locks,
	}
}

// Create inserts the booking and one detail row per claimed seat.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking, seats []*booking.ShowSeat) error {
	seatIDs := booking.SeatIDs(seats)
	if err := r.locks.requireSeats(seatIDs); err != nil {
		return err
	}

	if err := r.queries.InsertBooking(ctx, r.db, converter.BookingToInsertParams(b)); err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	r.locks.bookingsLocked(b.ID())

	n, err := r.queries.InsertBookingDetails(ctx, r.db, b.ID(), seatIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking details", err)
	}
	if n != int64(len(seatIDs)) {
		return errs.Newf("inserted %d of %d booking details", n, len(seatIDs))
	}
	return nil
}

// LockByID takes the row lock on one booking. It must precede any show seat
// lock in the same transaction.
func (r *BookingRepository) LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if err := r.locks.beforeBookingLock(); err != nil {
		return nil, err
	}

	row, err := r.queries.LockBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.NewNotFound("booking "+id.String()), booking.ErrBookingNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	r.locks.bookingsLocked(row.ID)
	return converter.BookingToDomain(row)
}

// LockExpiredPending locks up to limit pending bookings created before
// deadline, skipping rows another transaction holds.
func (r *BookingRepository) LockExpiredPending(ctx context.Context, deadline time.Time, limit int) ([]uuid.UUID, error) {
	if err := r.locks.beforeBookingLock(); err != nil {
		return nil, err
	}
	ids, err := r.queries.LockExpiredPendingBookings(ctx, r.db, deadline, int32(limit)) //nolint:gosec // batch size is validated at startup
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select expired bookings", err)
	}
	r.locks.bookingsLocked(ids...)
	return ids, nil
}

// SaveStatus persists a transition from the given previous status. Zero
// affected rows means the stored status no longer matches from.
func (r *BookingRepository) SaveStatus(ctx context.Context, b *booking.Booking, from booking.Status) error {
	if err := r.locks.requireBookings([]uuid.UUID{b.ID()}); err != nil {
		return err
	}
	affected, err := r.queries.UpdateBookingStatus(ctx, r.db, query.UpdateBookingStatusParams{
		ID:         b.ID(),
		FromStatus: from.String(),
		ToStatus:   b.Status().String(),
		UpdatedAt:  b.UpdatedAt(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected != 1 {
		return errs.Wrapf(booking.ErrInvalidState, "booking %s is no longer %s", b.ID(), from)
	}
	return nil
}

// CancelPending cancels the bookings among ids that are still pending and
// returns the ids it changed.
func (r *BookingRepository) CancelPending(ctx context.Context, ids []uuid.UUID, at time.Time) ([]uuid.UUID, error) {
	if err := r.locks.requireBookings(ids); err != nil {
		return nil, err
	}
	cancelled, err := r.queries.CancelPendingBookings(ctx, r.db, ids, at)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to cancel pending bookings", err)
	}
	return cancelled, nil
}
