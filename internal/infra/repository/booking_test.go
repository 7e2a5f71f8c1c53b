//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/infra/query"
	"seat-reservation/internal/infra/repository"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	clk := clock.NewMockClock(builder.DefaultNow)

	setup := func(t *testing.T) (*showSeatFixture, *booking.Booking, []*booking.ShowSeat) {
		f := newShowSeatFixture(t)
		ids := repository.SortIDs([]uuid.UUID{uuid.New(), uuid.New()})
		f.seatQueries.EXPECT().LockShowSeatsForEvent(ctx, f.db, eventID, ids).
			Return(seatRows(eventID, booking.SeatAvailable, ids...), nil)
		seats, err := f.seats.LockForEvent(ctx, eventID, ids)
		require.NoError(t, err)
		b, err := booking.NewPendingBooking(clk, uuid.New(), eventID, seats)
		require.NoError(t, err)
		return f, b, seats
	}

	testCases := []struct {
		name       string
		setupMock  func(f *showSeatFixture, b *booking.Booking)
		expectKind infra.RepositoryErrorKind
		wantErr    bool
	}{
		{
			name: "success: booking and details inserted",
			setupMock: func(f *showSeatFixture, b *booking.Booking) {
				f.bookingQueries.EXPECT().InsertBooking(ctx, f.db, query.InsertBookingParams{
					ID:          b.ID(),
					UserID:      b.UserID(),
					EventID:     eventID,
					TotalAmount: b.TotalAmount(),
					Status:      "pending",
					CreatedAt:   builder.DefaultNow,
				}).Return(nil)
				f.bookingQueries.EXPECT().InsertBookingDetails(ctx, f.db, b.ID(), gomock.Len(2)).Return(int64(2), nil)
			},
		},
		{
			name: "error: duplicate detail row",
			setupMock: func(f *showSeatFixture, b *booking.Booking) {
				f.bookingQueries.EXPECT().InsertBooking(ctx, f.db, gomock.Any()).Return(nil)
				f.bookingQueries.EXPECT().InsertBookingDetails(ctx, f.db, b.ID(), gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23505"})
			},
			expectKind: infra.KindDuplicateKey,
			wantErr:    true,
		},
		{
			name: "error: short copy",
			setupMock: func(f *showSeatFixture, b *booking.Booking) {
				f.bookingQueries.EXPECT().InsertBooking(ctx, f.db, gomock.Any()).Return(nil)
				f.bookingQueries.EXPECT().InsertBookingDetails(ctx, f.db, b.ID(), gomock.Any()).Return(int64(1), nil)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, b, seats := setup(t)
			tc.setupMock(f, b)

			err := f.bookings.Create(ctx, b, seats)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			}
		})
	}

	t.Run("error: seats must be locked first", func(t *testing.T) {
		f := newShowSeatFixture(t)
		seats := builder.NewShowSeatBuilder().WithEventID(eventID).BuildMany(1)
		b, err := booking.NewPendingBooking(clk, uuid.New(), eventID, seats)
		require.NoError(t, err)

		err = f.bookings.Create(ctx, b, seats)
		assert.True(t, errs.Is(err, repository.ErrLockOrderViolation), "got %v", err)
	})
}

func TestBookingRepository_LockByID(t *testing.T) {
	ctx := context.Background()

	t.Run("error: missing booking is not found", func(t *testing.T) {
		f := newShowSeatFixture(t)
		id := uuid.New()
		f.bookingQueries.EXPECT().LockBooking(ctx, f.db, id).Return(query.Booking{}, pgx.ErrNoRows)

		_, err := f.bookings.LockByID(ctx, id)
		assert.True(t, errs.Is(err, booking.ErrBookingNotFound), "got %v", err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: unknown status in the row", func(t *testing.T) {
		f := newShowSeatFixture(t)
		id := uuid.New()
		f.bookingQueries.EXPECT().LockBooking(ctx, f.db, id).Return(query.Booking{ID: id, Status: "expired"}, nil)

		_, err := f.bookings.LockByID(ctx, id)
		assert.True(t, errs.Is(err, booking.ErrInvalidBookingStatus), "got %v", err)
	})
}

func TestBookingRepository_SaveStatus(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(builder.DefaultNow.Add(time.Minute))

	lock := func(t *testing.T, f *showSeatFixture) *booking.Booking {
		t.Helper()
		row := query.Booking{ID: uuid.New(), UserID: uuid.New(), EventID: uuid.New(), Status: "pending", CreatedAt: builder.DefaultNow, UpdatedAt: builder.DefaultNow}
		f.bookingQueries.EXPECT().LockBooking(ctx, f.db, row.ID).Return(row, nil)
		b, err := f.bookings.LockByID(ctx, row.ID)
		require.NoError(t, err)
		return b
	}

	t.Run("success: status-scoped update", func(t *testing.T) {
		f := newShowSeatFixture(t)
		b := lock(t, f)
		require.NoError(t, b.Confirm(clk, nil))

		f.bookingQueries.EXPECT().UpdateBookingStatus(ctx, f.db, query.UpdateBookingStatusParams{
			ID:         b.ID(),
			FromStatus: "pending",
			ToStatus:   "confirmed",
			UpdatedAt:  builder.DefaultNow.Add(time.Minute),
		}).Return(int64(1), nil)

		assert.NoError(t, f.bookings.SaveStatus(ctx, b, booking.StatusPending))
	})

	t.Run("error: row already left the previous status", func(t *testing.T) {
		f := newShowSeatFixture(t)
		b := lock(t, f)
		require.NoError(t, b.Cancel(clk, nil))
		f.bookingQueries.EXPECT().UpdateBookingStatus(ctx, f.db, gomock.Any()).Return(int64(0), nil)

		err := f.bookings.SaveStatus(ctx, b, booking.StatusPending)
		assert.True(t, errs.Is(err, booking.ErrInvalidState), "got %v", err)
	})

	t.Run("error: unlocked booking", func(t *testing.T) {
		f := newShowSeatFixture(t)
		b := builder.NewBookingBuilder().Build()

		err := f.bookings.SaveStatus(ctx, b, booking.StatusPending)
		assert.True(t, errs.Is(err, repository.ErrLockOrderViolation), "got %v", err)
	})
}

func TestBookingRepository_CancelPending(t *testing.T) {
	ctx := context.Background()
	f := newShowSeatFixture(t)
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	at := builder.DefaultNow

	f.bookingQueries.EXPECT().LockExpiredPendingBookings(ctx, f.db, at, int32(2)).Return(ids, nil)
	f.bookingQueries.EXPECT().CancelPendingBookings(ctx, f.db, ids, at).Return(ids[:1], nil)

	locked, err := f.bookings.LockExpiredPending(ctx, at, 2)
	require.NoError(t, err)
	cancelled, err := f.bookings.CancelPending(ctx, locked, at)
	require.NoError(t, err)
	assert.Equal(t, ids[:1], cancelled)
}
