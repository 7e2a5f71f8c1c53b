//go:build e2e

package engine_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra/lease"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/metrics"
	"seat-reservation/internal/usecase/commands"
	"seat-reservation/internal/usecase/shared"
	"seat-reservation/internal/worker/reaper"
	"seat-reservation/tests/common/dbtest"
	"seat-reservation/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const expiredAge = 11 * time.Minute

type EngineSuite struct {
	e2e.SharedSuite
}

func TestEngineSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) newReaper(l lease.Lease, batchSize int) *reaper.Reaper {
	return reaper.New(s.UoW, clock.NewRealClock(), l, metrics.New(prometheus.NewRegistry()),
		slog.New(slog.DiscardHandler), reaper.Config{
			Interval:  time.Minute,
			TTL:       s.Config.Reaper.TTL,
			BatchSize: batchSize,
		})
}

func (s *EngineSuite) create(eventID uuid.UUID, seats []uuid.UUID, userID uuid.UUID) *commands.CreateReservationResult {
	s.T().Helper()
	res, err := s.Commands.CreateReservation(context.Background(), eventID, seats, userID)
	s.Require().NoError(err)
	return res
}

func (s *EngineSuite) bookingTotal(bookingID uuid.UUID) decimal.Decimal {
	s.T().Helper()
	var total decimal.Decimal
	err := s.DB.QueryRow(context.Background(), "SELECT total_amount FROM bookings WHERE id = $1", bookingID).Scan(&total)
	s.Require().NoError(err)
	return total
}

// =============================================================================
// Reserve, compete, confirm, then reap
// =============================================================================

func (s *EngineSuite) TestReserveConfirmReapScenario() {
	t := s.T()
	ctx := context.Background()
	ev := dbtest.SeedEvent(t, s.DB, 2, "10.00")
	s1, s2 := ev.ShowSeatIDs[0], ev.ShowSeatIDs[1]
	u1, u2 := uuid.New(), uuid.New()

	b1 := s.create(ev.EventID, []uuid.UUID{s1, s2}, u1)
	s.Equal(booking.StatusPending, b1.Status)
	s.True(decimal.RequireFromString("20").Equal(b1.TotalAmount), b1.TotalAmount.String())
	s.Equal(2, dbtest.CountSeats(t, s.DB, ev.ShowSeatIDs, "locked"))

	_, err := s.Commands.CreateReservation(ctx, ev.EventID, []uuid.UUID{s1}, u2)
	s.Equal(booking.KindSeatUnavailable, booking.KindOf(err))

	s.Require().NoError(s.Commands.ConfirmReservation(ctx, b1.BookingID, u1, "card"))
	s.Equal("confirmed", dbtest.BookingStatus(t, s.DB, b1.BookingID))
	s.Equal(2, dbtest.CountSeats(t, s.DB, ev.ShowSeatIDs, "booked"))
	s.Equal(1, dbtest.CountPayments(t, s.DB, b1.BookingID))

	var paid decimal.Decimal
	s.Require().NoError(s.DB.QueryRow(ctx, "SELECT amount FROM payments WHERE booking_id = $1", b1.BookingID).Scan(&paid))
	s.True(decimal.RequireFromString("20").Equal(paid), paid.String())

	dbtest.BackdateBooking(t, s.DB, b1.BookingID, expiredAge)
	result, err := s.Reaper.RunOnce(ctx)
	s.Require().NoError(err)
	s.Zero(result.Expired)
	s.Equal("confirmed", dbtest.BookingStatus(t, s.DB, b1.BookingID))
	s.Equal(2, dbtest.CountSeats(t, s.DB, ev.ShowSeatIDs, "booked"))
	s.Zero(dbtest.CountSeatInvariantViolations(t, s.DB))
}

// =============================================================================
// Concurrent creates over a shared seat
// =============================================================================

func (s *EngineSuite) TestNoDoubleLock() {
	t := s.T()
	const callers = 20
	ev := dbtest.SeedEvent(t, s.DB, 4, "10.00")
	common := ev.ShowSeatIDs[0]
	retry := shared.RetryPolicy{MaxAttempts: 5, BaseDelay: 10 * time.Millisecond}

	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		mu      sync.Mutex
		winners []*commands.CreateReservationResult
		kinds   = map[booking.Kind]int{}
	)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seats := []uuid.UUID{common, ev.ShowSeatIDs[1+i%3]}
			<-start
			res, err := shared.RetryTransient(context.Background(), retry,
				func(ctx context.Context) (*commands.CreateReservationResult, error) {
					return s.Commands.CreateReservation(ctx, ev.EventID, seats, uuid.New())
				})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				kinds[booking.KindOf(err)]++
				return
			}
			winners = append(winners, res)
		}()
	}
	close(start)
	wg.Wait()

	require.Len(t, winners, 1)
	if diff := cmp.Diff(map[booking.Kind]int{booking.KindSeatUnavailable: callers - 1}, kinds); diff != "" {
		t.Errorf("failure kinds mismatch (-want +got):\n%s", diff)
	}
	s.Equal("locked", dbtest.SeatStatus(t, s.DB, common))
	s.Equal(2, dbtest.CountSeats(t, s.DB, ev.ShowSeatIDs, "locked"))
	s.Equal(1, dbtest.CountBookings(t, s.DB, ev.EventID, "pending"))
	s.Zero(dbtest.CountSeatInvariantViolations(t, s.DB))
}

func (s *EngineSuite) TestConcurrentDisjointCreatesAllSucceed() {
	t := s.T()
	ev := dbtest.SeedEvent(t, s.DB, 10, "5.00")

	var wg sync.WaitGroup
	errCh := make(chan error, 5)
	for i := range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// reversed order on purpose; the store sorts before locking
			seats := []uuid.UUID{ev.ShowSeatIDs[2*i+1], ev.ShowSeatIDs[2*i]}
			_, err := s.Commands.CreateReservation(context.Background(), ev.EventID, seats, uuid.New())
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		s.NoError(err)
	}
	s.Equal(10, dbtest.CountSeats(t, s.DB, ev.ShowSeatIDs, "locked"))
	s.Zero(dbtest.CountSeatInvariantViolations(t, s.DB))
}

// =============================================================================
// Expiry
// =============================================================================

func (s *EngineSuite) TestConfirmAfterExpiryFails() {
	t := s.T()
	ctx := context.Background()
	ev := dbtest.SeedEvent(t, s.DB, 2, "10.00")
	userID := uuid.New()

	b := s.create(ev.EventID, ev.ShowSeatIDs, userID)
	dbtest.BackdateBooking(t, s.DB, b.BookingID, expiredAge)

	result, err := s.Reaper.RunOnce(ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), result.Expired)
	s.Equal(int64(2), result.Released)

	err = s.Commands.ConfirmReservation(ctx, b.BookingID, userID, "card")
	s.Equal(booking.KindInvalidState, booking.KindOf(err))
	s.Equal("cancelled", dbtest.BookingStatus(t, s.DB, b.BookingID))
	s.Equal(2, dbtest.CountSeats(t, s.DB, ev.ShowSeatIDs, "available"))
	s.Zero(dbtest.CountPayments(t, s.DB, b.BookingID))
}

func (s *EngineSuite) TestReaperLeavesFreshBookings() {
	t := s.T()
	ev := dbtest.SeedEvent(t, s.DB, 2, "10.00")

	stale := s.create(ev.EventID, ev.ShowSeatIDs[:1], uuid.New())
	fresh := s.create(ev.EventID, ev.ShowSeatIDs[1:], uuid.New())
	dbtest.BackdateBooking(t, s.DB, stale.BookingID, expiredAge)

	result, err := s.Reaper.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(1), result.Expired)
	s.Equal("cancelled", dbtest.BookingStatus(t, s.DB, stale.BookingID))
	s.Equal("pending", dbtest.BookingStatus(t, s.DB, fresh.BookingID))
	s.Equal("available", dbtest.SeatStatus(t, s.DB, ev.ShowSeatIDs[0]))
	s.Equal("locked", dbtest.SeatStatus(t, s.DB, ev.ShowSeatIDs[1]))
}

func (s *EngineSuite) TestReaperDrainsInBatchesAndIsIdempotent() {
	t := s.T()
	ctx := context.Background()
	ev := dbtest.SeedEvent(t, s.DB, 7, "10.00")

	for _, seatID := range ev.ShowSeatIDs {
		b := s.create(ev.EventID, []uuid.UUID{seatID}, uuid.New())
		dbtest.BackdateBooking(t, s.DB, b.BookingID, expiredAge)
	}

	r := s.newReaper(nil, 3)
	result, err := r.RunOnce(ctx)
	s.Require().NoError(err)
	if diff := cmp.Diff(reaper.RunResult{Expired: 7, Released: 7, Batches: 3}, result); diff != "" {
		t.Errorf("first run mismatch (-want +got):\n%s", diff)
	}
	s.Equal(7, dbtest.CountSeats(t, s.DB, ev.ShowSeatIDs, "available"))

	again, err := r.RunOnce(ctx)
	s.Require().NoError(err)
	s.Equal(reaper.RunResult{}, again)
	s.Zero(dbtest.CountSeatInvariantViolations(t, s.DB))
}

func (s *EngineSuite) TestReaperHonoursRedisLease() {
	t := s.T()
	ctx := context.Background()
	client := e2e.StartRedis(t)
	ev := dbtest.SeedEvent(t, s.DB, 1, "10.00")

	b := s.create(ev.EventID, ev.ShowSeatIDs, uuid.New())
	dbtest.BackdateBooking(t, s.DB, b.BookingID, expiredAge)

	holder := lease.NewRedisLease(client, lease.ReaperKey, time.Minute)
	token, ok, err := holder.Acquire(ctx)
	s.Require().NoError(err)
	s.Require().True(ok)

	r := s.newReaper(lease.NewRedisLease(client, lease.ReaperKey, time.Minute), 100)
	result, err := r.RunOnce(ctx)
	s.Require().NoError(err)
	s.True(result.Skipped)
	s.Equal("pending", dbtest.BookingStatus(t, s.DB, b.BookingID))

	s.Require().NoError(holder.Release(ctx, token))
	result, err = r.RunOnce(ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), result.Expired)
	s.Equal("cancelled", dbtest.BookingStatus(t, s.DB, b.BookingID))

	// the reaper gives the lease back after its run
	s.Zero(client.Exists(ctx, lease.ReaperKey).Val())
}

// =============================================================================
// Cancel and price snapshots
// =============================================================================

func (s *EngineSuite) TestCancelReleasesExactlyItsSeats() {
	t := s.T()
	ctx := context.Background()
	ev := dbtest.SeedEvent(t, s.DB, 4, "10.00")
	u1, u2 := uuid.New(), uuid.New()

	b1 := s.create(ev.EventID, ev.ShowSeatIDs[:2], u1)
	b2 := s.create(ev.EventID, ev.ShowSeatIDs[2:3], u2)

	s.Require().NoError(s.Commands.CancelReservation(ctx, b1.BookingID, u1))
	s.Equal(2, dbtest.CountSeats(t, s.DB, ev.ShowSeatIDs[:2], "available"))
	s.Equal("locked", dbtest.SeatStatus(t, s.DB, ev.ShowSeatIDs[2]))
	s.Equal("available", dbtest.SeatStatus(t, s.DB, ev.ShowSeatIDs[3]))
	s.Equal("pending", dbtest.BookingStatus(t, s.DB, b2.BookingID))

	err := s.Commands.CancelReservation(ctx, b1.BookingID, u1)
	s.Equal(booking.KindInvalidState, booking.KindOf(err))

	err = s.Commands.CancelReservation(ctx, b2.BookingID, u1)
	s.Equal(booking.KindForbidden, booking.KindOf(err))
	s.Equal("pending", dbtest.BookingStatus(t, s.DB, b2.BookingID))

	// a confirmed booking may still be cancelled; its payment stays on record
	s.Require().NoError(s.Commands.ConfirmReservation(ctx, b2.BookingID, u2, ""))
	s.Require().NoError(s.Commands.CancelReservation(ctx, b2.BookingID, u2))
	s.Equal("available", dbtest.SeatStatus(t, s.DB, ev.ShowSeatIDs[2]))
	s.Equal(1, dbtest.CountPayments(t, s.DB, b2.BookingID))
	s.Zero(dbtest.CountSeatInvariantViolations(t, s.DB))

	// freed seats can be claimed again
	s.create(ev.EventID, ev.ShowSeatIDs, uuid.New())
	s.Equal(4, dbtest.CountSeats(t, s.DB, ev.ShowSeatIDs, "locked"))
}

func (s *EngineSuite) TestAmountSnapshotStability() {
	t := s.T()
	ctx := context.Background()
	ev := dbtest.SeedEvent(t, s.DB, 2, "12.50")
	userID := uuid.New()

	b := s.create(ev.EventID, ev.ShowSeatIDs, userID)
	s.True(decimal.RequireFromString("25.00").Equal(b.TotalAmount))

	dbtest.SetSeatPrice(t, s.DB, ev.ShowSeatIDs[0], "99.00")
	s.True(decimal.RequireFromString("25.00").Equal(s.bookingTotal(b.BookingID)))

	s.Require().NoError(s.Commands.ConfirmReservation(ctx, b.BookingID, userID, "card"))
	var paid decimal.Decimal
	s.Require().NoError(s.DB.QueryRow(ctx, "SELECT amount FROM payments WHERE booking_id = $1", b.BookingID).Scan(&paid))
	s.True(decimal.RequireFromString("25.00").Equal(paid), paid.String())
}

// =============================================================================
// Rejections leave no trace
// =============================================================================

func (s *EngineSuite) TestRejectedCreatesHaveNoEffect() {
	t := s.T()
	ctx := context.Background()
	ev := dbtest.SeedEvent(t, s.DB, 2, "10.00")
	other := dbtest.SeedEvent(t, s.DB, 1, "10.00")
	userID := uuid.New()

	s.create(ev.EventID, ev.ShowSeatIDs[1:], uuid.New())

	cases := []struct {
		name    string
		eventID uuid.UUID
		seats   []uuid.UUID
		kind    booking.Kind
	}{
		{"one seat taken", ev.EventID, ev.ShowSeatIDs, booking.KindSeatUnavailable},
		{"unknown event", uuid.New(), ev.ShowSeatIDs[:1], booking.KindNotFound},
		{"seat of another event", ev.EventID, []uuid.UUID{ev.ShowSeatIDs[0], other.ShowSeatIDs[0]}, booking.KindNotFound},
		{"unknown seat", ev.EventID, []uuid.UUID{uuid.New()}, booking.KindNotFound},
		{"duplicate seat", ev.EventID, []uuid.UUID{ev.ShowSeatIDs[0], ev.ShowSeatIDs[0]}, booking.KindInvalidArgument},
		{"no seats", ev.EventID, nil, booking.KindInvalidArgument},
	}
	for _, tc := range cases {
		_, err := s.Commands.CreateReservation(ctx, tc.eventID, tc.seats, userID)
		s.Equal(tc.kind, booking.KindOf(err), tc.name)
	}

	s.Equal("available", dbtest.SeatStatus(t, s.DB, ev.ShowSeatIDs[0]))
	s.Equal("available", dbtest.SeatStatus(t, s.DB, other.ShowSeatIDs[0]))
	s.Equal(1, dbtest.CountBookings(t, s.DB, ev.EventID, "pending"))
	s.Zero(dbtest.CountSeatInvariantViolations(t, s.DB))
}
