package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ORDER BY id makes the row locks of FOR UPDATE be taken in ascending id
// order, which is the global order every seat-locking statement must follow.
const lockShowSeatsForEvent = `
SELECT id, event_id, seat_id, price, status
FROM show_seats
WHERE event_id = $1 AND id = ANY($2::uuid[])
ORDER BY id
FOR UPDATE
`

func (q *Queries) LockShowSeatsForEvent(ctx context.Context, db DBTX, eventID uuid.UUID, ids []uuid.UUID) ([]ShowSeat, error) {
	rows, err := db.Query(ctx, lockShowSeatsForEvent, eventID, ids)
	if err != nil {
		return nil, err
	}
	return collectShowSeats(rows)
}

const lockShowSeatsByBookings = `
SELECT ss.id, ss.event_id, ss.seat_id, ss.price, ss.status
FROM show_seats ss
WHERE ss.id IN (
    SELECT bd.show_seat_id FROM booking_details bd WHERE bd.booking_id = ANY($1::uuid[])
)
ORDER BY ss.id
FOR UPDATE OF ss
`

func (q *Queries) LockShowSeatsByBookings(ctx context.Context, db DBTX, bookingIDs []uuid.UUID) ([]ShowSeat, error) {
	rows, err := db.Query(ctx, lockShowSeatsByBookings, bookingIDs)
	if err != nil {
		return nil, err
	}
	return collectShowSeats(rows)
}

const updateShowSeatStatus = `
UPDATE show_seats
SET status = $3, updated_at = now()
WHERE id = ANY($1::uuid[]) AND status = ANY($2::text[])
`

func (q *Queries) UpdateShowSeatStatus(ctx context.Context, db DBTX, arg UpdateShowSeatStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateShowSeatStatus, arg.IDs, arg.FromStatus, arg.ToStatus)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Only seats claimed by bookings that are still pending are touched, so a
// booking confirmed or cancelled after selection keeps its seats.
const releaseShowSeatsForPendingBookings = `
UPDATE show_seats ss
SET status = 'available', updated_at = now()
FROM booking_details bd
JOIN bookings b ON b.id = bd.booking_id
WHERE bd.show_seat_id = ss.id
  AND b.id = ANY($1::uuid[])
  AND b.status = 'pending'
  AND ss.status = 'locked'
`

func (q *Queries) ReleaseShowSeatsForPendingBookings(ctx context.Context, db DBTX, bookingIDs []uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, releaseShowSeatsForPendingBookings, bookingIDs)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func collectShowSeats(rows pgx.Rows) ([]ShowSeat, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ShowSeat, error) {
		var s ShowSeat
		err := row.Scan(&s.ID, &s.EventID, &s.SeatID, &s.Price, &s.Status)
		return s, err
	})
}
