package query

import (
	"context"

	"seat-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const findEvent = `
SELECT e.id, e.title, t.name, e.starts_at
FROM events e
JOIN theaters t ON t.id = e.theater_id
WHERE e.id = $1
`

func (q *Queries) FindEvent(ctx context.Context, db DBTX, id uuid.UUID) (Event, error) {
	var e Event
	err := db.QueryRow(ctx, findEvent, id).Scan(&e.ID, &e.Title, &e.TheaterName, &e.StartsAt)
	return e, err
}

const listEventSeats = `
SELECT ss.id, s.id, s.row_label || s.seat_number::text, s.category, ss.price, ss.status
FROM show_seats ss
JOIN seats s ON s.id = ss.seat_id
WHERE ss.event_id = $1
ORDER BY s.row_label, s.seat_number
`

func (q *Queries) ListEventSeats(ctx context.Context, db DBTX, eventID uuid.UUID) ([]EventSeatRow, error) {
	rows, err := db.Query(ctx, listEventSeats, eventID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (EventSeatRow, error) {
		var r EventSeatRow
		err := row.Scan(&r.ShowSeatID, &r.SeatID, &r.Label, &r.Category, &r.Price, &r.Status)
		return r, err
	})
}

const listUserBookings = `
SELECT b.id, e.id, e.title, t.name, e.starts_at,
       array_agg(s.row_label || s.seat_number::text ORDER BY s.row_label, s.seat_number)
           FILTER (WHERE s.id IS NOT NULL),
       b.status, b.total_amount, b.created_at
FROM bookings b
JOIN events e ON e.id = b.event_id
JOIN theaters t ON t.id = e.theater_id
LEFT JOIN booking_details bd ON bd.booking_id = b.id
LEFT JOIN show_seats ss ON ss.id = bd.show_seat_id
LEFT JOIN seats s ON s.id = ss.seat_id
WHERE b.user_id = $1
GROUP BY b.id, e.id, t.name
ORDER BY b.created_at DESC, b.id DESC
`

func (q *Queries) ListUserBookings(ctx context.Context, db DBTX, userID uuid.UUID) ([]UserBookingRow, error) {
	rows, err := db.Query(ctx, listUserBookings, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (UserBookingRow, error) {
		var (
			r     UserBookingRow
			seats []pgtype.Text
		)
		err := row.Scan(&r.ID, &r.EventID, &r.EventTitle, &r.TheaterName, &r.StartsAt,
			&seats, &r.Status, &r.TotalAmount, &r.CreatedAt)
		r.Seats = pgconv.StringsFromPgtype(seats)
		return r, err
	})
}

const getBookingDetail = `
SELECT b.id, b.user_id, e.id, e.title, t.name, e.starts_at,
       array_agg(s.row_label || s.seat_number::text ORDER BY s.row_label, s.seat_number)
           FILTER (WHERE s.id IS NOT NULL),
       b.status, b.total_amount, b.created_at, b.updated_at,
       p.id, p.payment_method, p.amount, p.paid_at
FROM bookings b
JOIN events e ON e.id = b.event_id
JOIN theaters t ON t.id = e.theater_id
LEFT JOIN booking_details bd ON bd.booking_id = b.id
LEFT JOIN show_seats ss ON ss.id = bd.show_seat_id
LEFT JOIN seats s ON s.id = ss.seat_id
LEFT JOIN payments p ON p.booking_id = b.id
WHERE b.id = $1
GROUP BY b.id, e.id, t.name, p.id
`

func (q *Queries) GetBookingDetail(ctx context.Context, db DBTX, id uuid.UUID) (BookingDetailRow, error) {
	var (
		r         BookingDetailRow
		seats     []pgtype.Text
		paymentID pgtype.UUID
		method    pgtype.Text
		paidAt    pgtype.Timestamptz
	)
	err := db.QueryRow(ctx, getBookingDetail, id).Scan(
		&r.ID, &r.UserID, &r.EventID, &r.EventTitle, &r.TheaterName, &r.StartsAt,
		&seats,
		&r.Status, &r.TotalAmount, &r.CreatedAt, &r.UpdatedAt,
		&paymentID, &method, &r.PaymentAmount, &paidAt,
	)
	if err != nil {
		return BookingDetailRow{}, err
	}
	r.Seats = pgconv.StringsFromPgtype(seats)
	r.PaymentID = pgconv.UUIDPtrFromPgtype(paymentID)
	r.PaymentMethod = pgconv.StringPtrFromPgtype(method)
	r.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	return r, nil
}

// Keyset pagination over (created_at DESC, id DESC).
const listBookingsPage = `
SELECT b.id, b.user_id, e.id, e.title, t.name, e.starts_at,
       array_agg(s.row_label || s.seat_number::text ORDER BY s.row_label, s.seat_number)
           FILTER (WHERE s.id IS NOT NULL),
       b.status, b.total_amount, b.created_at, b.updated_at
FROM bookings b
JOIN events e ON e.id = b.event_id
JOIN theaters t ON t.id = e.theater_id
LEFT JOIN booking_details bd ON bd.booking_id = b.id
LEFT JOIN show_seats ss ON ss.id = bd.show_seat_id
LEFT JOIN seats s ON s.id = ss.seat_id
WHERE $1::timestamptz IS NULL OR (b.created_at, b.id) < ($1::timestamptz, $2::uuid)
GROUP BY b.id, e.id, t.name
ORDER BY b.created_at DESC, b.id DESC
LIMIT $3
`

func (q *Queries) ListBookingsPage(ctx context.Context, db DBTX, arg ListBookingsPageParams) ([]BookingDetailRow, error) {
	rows, err := db.Query(ctx, listBookingsPage,
		pgconv.TimePtrToPgtype(arg.AfterCreatedAt),
		pgconv.UUIDPtrToPgtype(arg.AfterID),
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (BookingDetailRow, error) {
		var (
			r     BookingDetailRow
			seats []pgtype.Text
		)
		err := row.Scan(&r.ID, &r.UserID, &r.EventID, &r.EventTitle, &r.TheaterName, &r.StartsAt,
			&seats, &r.Status, &r.TotalAmount, &r.CreatedAt, &r.UpdatedAt)
		r.Seats = pgconv.StringsFromPgtype(seats)
		return r, err
	})
}
