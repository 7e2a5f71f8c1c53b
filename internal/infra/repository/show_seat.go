package repository

import (
	"bytes"
	"context"
	"slices"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/infra/query"
	"seat-reservation/internal/infra/repository/converter"
	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=show_seat.go -destination=../../../tests/mock/repository/show_seat.go -package=repositorymock

type ShowSeatWriteQueries interface {
	LockShowSeatsForEvent(ctx context.Context, db query.DBTX, eventID uuid.UUID, ids []uuid.UUID) ([]query.ShowSeat, error)
	LockShowSeatsByBookings(ctx context.Context, db query.DBTX, bookingIDs []uuid.UUID) ([]query.ShowSeat, error)
	UpdateShowSeatStatus(ctx context.Context, db query.DBTX, arg query.UpdateShowSeatStatusParams) (int64, error)
	ReleaseShowSeatsForPendingBookings(ctx context.Context, db query.DBTX, bookingIDs []uuid.UUID) (int64, error)
}

type ShowSeatRepository struct {
	queries ShowSeatWriteQueries
	db      query.DBTX
	locks   *LockTracker
}

func NewShowSeatRepository(queries ShowSeatWriteQueries, db query.DBTX, locks *LockTracker) *ShowSeatRepository {
	return &ShowSeatRepository{
		queries: queries,
		db:      db,
		locks:   locks,
	}
}

// LockForEvent locks the requested show seats of one event in ascending id
// order. Ids that do not resolve to a row of that event are reported through
// ErrSeatNotFound.
func (r *ShowSeatRepository) LockForEvent(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) ([]*booking.ShowSeat, error) {
	sorted := SortIDs(ids)

	rows, err := r.queries.LockShowSeatsForEvent(ctx, r.db, eventID, sorted)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock show seats", err)
	}

	seats, err := converter.ShowSeatsToDomain(rows)
	if err != nil {
		return nil, err
	}
	r.locks.showSeatsLocked(booking.SeatIDs(seats)...)

	if missing := missingIDs(sorted, seats); len(missing) > 0 {
		return nil, errs.Wrapf(booking.ErrSeatNotFound, "show seats %v not found for event %s", missing, eventID)
	}
	return seats, nil
}

// LockByBookings locks every show seat claimed by the given bookings. The
// bookings themselves must already be locked by this transaction.
func (r *ShowSeatRepository) LockByBookings(ctx context.Context, bookingIDs []uuid.UUID) ([]*booking.ShowSeat, error) {
	if err := r.locks.requireBookings(bookingIDs); err != nil {
		return nil, err
	}
	rows, err := r.queries.LockShowSeatsByBookings(ctx, r.db, SortIDs(bookingIDs))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock show seats by bookings", err)
	}
	seats, err := converter.ShowSeatsToDomain(rows)
	if err != nil {
		return nil, err
	}
	r.locks.showSeatsLocked(booking.SeatIDs(seats)...)
	return seats, nil
}

// SaveStatus persists seats that moved to the given status. Every seat must
// have been locked and must still be in one of the from statuses in the
// store; anything else means the in-memory state diverged from the row.
func (r *ShowSeatRepository) SaveStatus(ctx context.Context, seats []*booking.ShowSeat, from ...booking.SeatStatus) error {
	if len(seats) == 0 {
		return nil
	}
	ids := booking.SeatIDs(seats)
	if err := r.locks.requireSeats(ids); err != nil {
		return err
	}

	to := seats[0].Status()
	for _, s := range seats[1:] {
		if s.Status() != to {
			return errs.Wrapf(booking.ErrInvalidSeatTransition, "mixed target statuses %s and %s", to, s.Status())
		}
	}

	fromStatuses := make([]string, len(from))
	for i, f := range from {
		fromStatuses[i] = f.String()
	}

	affected, err := r.queries.UpdateShowSeatStatus(ctx, r.db, query.UpdateShowSeatStatusParams{
		IDs:        ids,
		FromStatus: fromStatuses,
		ToStatus:   to.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update show seat status", err)
	}
	if affected != int64(len(ids)) {
		return errs.Wrapf(booking.ErrInvalidSeatTransition, "updated %d of %d show seats to %s", affected, len(ids), to)
	}
	return nil
}

// ReleaseForPendingBookings frees the seats of bookings that are still
// pending. Seats of bookings that have left Pending are not touched.
func (r *ShowSeatRepository) ReleaseForPendingBookings(ctx context.Context, bookingIDs []uuid.UUID) (int64, error) {
	if err := r.locks.requireBookings(bookingIDs); err != nil {
		return 0, err
	}
	affected, err := r.queries.ReleaseShowSeatsForPendingBookings(ctx, r.db, bookingIDs)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release show seats", err)
	}
	return affected, nil
}

// SortIDs returns a sorted copy in the byte order PostgreSQL uses for uuid.
func SortIDs(ids []uuid.UUID) []uuid.UUID {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return sorted
}

func missingIDs(requested []uuid.UUID, found []*booking.ShowSeat) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(found))
	for _, s := range found {
		seen[s.ID()] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range requested {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
