package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventExists = `
SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)
`

func (q *Queries) EventExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, eventExists, id).Scan(&exists)
	return exists, err
}

const insertBooking = `
INSERT INTO bookings (id, user_id, event_id, total_amount, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) error {
	_, err := db.Exec(ctx, insertBooking,
		arg.ID,
		arg.UserID,
		arg.EventID,
		arg.TotalAmount,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

func (q *Queries) InsertBookingDetails(ctx context.Context, db DBTX, bookingID uuid.UUID, showSeatIDs []uuid.UUID) (int64, error) {
	return db.CopyFrom(ctx,
		pgx.Identifier{"booking_details"},
		[]string{"booking_id", "show_seat_id"},
		pgx.CopyFromSlice(len(showSeatIDs), func(i int) ([]any, error) {
			return []any{bookingID, showSeatIDs[i]}, nil
		}),
	)
}

const lockBooking = `
SELECT id, user_id, event_id, total_amount, status, created_at, updated_at
FROM bookings
WHERE id = $1
FOR UPDATE
`

func (q *Queries) LockBooking(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	var b Booking
	err := db.QueryRow(ctx, lockBooking, id).Scan(
		&b.ID,
		&b.UserID,
		&b.EventID,
		&b.TotalAmount,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

// SKIP LOCKED leaves bookings that a Confirm or Cancel is holding to the next
// reaper run instead of waiting on them.
const lockExpiredPendingBookings = `
SELECT id
FROM bookings
WHERE status = 'pending' AND created_at < $1
ORDER BY id
LIMIT $2
FOR UPDATE SKIP LOCKED
`

func (q *Queries) LockExpiredPendingBookings(ctx context.Context, db DBTX, deadline time.Time, limit int32) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, lockExpiredPendingBookings, deadline, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

const updateBookingStatus = `
UPDATE bookings
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2
`

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.FromStatus, arg.ToStatus, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const cancelPendingBookings = `
UPDATE bookings
SET status = 'cancelled', updated_at = $2
WHERE id = ANY($1::uuid[]) AND status = 'pending'
RETURNING id
`

func (q *Queries) CancelPendingBookings(ctx context.Context, db DBTX, ids []uuid.UUID, updatedAt time.Time) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, cancelPendingBookings, ids, updatedAt)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

const insertPayment = `
INSERT INTO payments (id, booking_id, amount, payment_method, status, paid_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (q *Queries) InsertPayment(ctx context.Context, db DBTX, arg InsertPaymentParams) error {
	_, err := db.Exec(ctx, insertPayment,
		arg.ID,
		arg.BookingID,
		arg.Amount,
		arg.PaymentMethod,
		arg.Status,
		arg.PaidAt,
	)
	return err
}
