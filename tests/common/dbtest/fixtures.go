//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a single connection and a transaction, so
// fixtures can seed inside a test's own transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SeededEvent is an event with one show seat per theater seat, all Available.
// ShowSeatIDs follow seat order: A1, A2, ...
type SeededEvent struct {
	TheaterID   uuid.UUID
	EventID     uuid.UUID
	ShowSeatIDs []uuid.UUID
	Labels      []string
}

// SeedEvent inserts a theater with a single row of n seats, an event in it
// and the event's show seats priced at price.
func SeedEvent(t *testing.T, db DBLike, n int, price string) SeededEvent {
	t.Helper()
	ctx := context.Background()

	ev := SeededEvent{TheaterID: uuid.New(), EventID: uuid.New()}

	_, err := db.Exec(ctx, "INSERT INTO theaters (id, name, city) VALUES ($1, $2, 'Test City')",
		ev.TheaterID, "Theater "+ev.TheaterID.String()[:8])
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO events (id, theater_id, title, starts_at) VALUES ($1, $2, $3, $4)",
		ev.EventID, ev.TheaterID, "Test Event", time.Now().Add(72*time.Hour))
	require.NoError(t, err)

	amount := decimal.RequireFromString(price)
	for i := 1; i <= n; i++ {
		seatID, showSeatID := uuid.New(), uuid.New()
		_, err = db.Exec(ctx,
			"INSERT INTO seats (id, theater_id, row_label, seat_number, category) VALUES ($1, $2, 'A', $3, 'standard')",
			seatID, ev.TheaterID, i)
		require.NoError(t, err)

		_, err = db.Exec(ctx,
			"INSERT INTO show_seats (id, event_id, seat_id, price, status) VALUES ($1, $2, $3, $4, 'available')",
			showSeatID, ev.EventID, seatID, amount)
		require.NoError(t, err)

		ev.ShowSeatIDs = append(ev.ShowSeatIDs, showSeatID)
		ev.Labels = append(ev.Labels, fmt.Sprintf("A%d", i))
	}
	return ev
}

func SeatStatus(t *testing.T, db DBLike, showSeatID uuid.UUID) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM show_seats WHERE id = $1", showSeatID).Scan(&status)
	require.NoError(t, err)
	return status
}

// CountSeats returns how many of ids are in status.
func CountSeats(t *testing.T, db DBLike, ids []uuid.UUID, status string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM show_seats WHERE id = ANY($1::uuid[]) AND status = $2", ids, status).Scan(&n)
	require.NoError(t, err)
	return n
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountBookings(t *testing.T, db DBLike, eventID uuid.UUID, status string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE event_id = $1 AND status = $2", eventID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountPayments(t *testing.T, db DBLike, bookingID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM payments WHERE booking_id = $1", bookingID).Scan(&n)
	require.NoError(t, err)
	return n
}

// BackdateBooking moves created_at into the past so the reaper treats the
// booking as expired.
func BackdateBooking(t *testing.T, db DBLike, bookingID uuid.UUID, age time.Duration) {
	t.Helper()
	tag, err := db.Exec(context.Background(),
		"UPDATE bookings SET created_at = created_at - $2::interval WHERE id = $1",
		bookingID, age)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

// SetSeatPrice reprices a show seat as the catalog service would.
func SetSeatPrice(t *testing.T, db DBLike, showSeatID uuid.UUID, price string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE show_seats SET price = $2 WHERE id = $1",
		showSeatID, decimal.RequireFromString(price))
	require.NoError(t, err)
}

// CountSeatInvariantViolations counts show seats whose status disagrees with
// the bookings that claim them: Available has no live claim, Locked exactly
// one Pending claim, Booked exactly one Confirmed claim.
func CountSeatInvariantViolations(t *testing.T, db DBLike) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), `
		SELECT count(*)
		FROM show_seats ss
		CROSS JOIN LATERAL (
		    SELECT count(*) FILTER (WHERE b.status = 'pending')   AS pending,
		           count(*) FILTER (WHERE b.status = 'confirmed') AS confirmed
		    FROM booking_details bd
		    JOIN bookings b ON b.id = bd.booking_id
		    WHERE bd.show_seat_id = ss.id
		) claims
		WHERE NOT (
		       (ss.status = 'available' AND claims.pending = 0 AND claims.confirmed = 0)
		    OR (ss.status = 'locked'    AND claims.pending = 1 AND claims.confirmed = 0)
		    OR (ss.status = 'booked'    AND claims.pending = 0 AND claims.confirmed = 1)
		)`).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
