//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/infra/query"
	"seat-reservation/internal/infra/readstore"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/queries"
	readstoremock "seat-reservation/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var startsAt = time.Date(2026, 4, 1, 18, 30, 0, 0, time.UTC)

func TestBookingReadStore_FindBooking(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	paymentID := uuid.New()
	paidAt := startsAt.Add(-24 * time.Hour)
	method := "Card"

	testCases := []struct {
		name    string
		row     query.BookingDetailRow
		err     error
		want    *queries.BookingView
		wantErr error
	}{
		{
			name: "pending booking has no payment",
			row: query.BookingDetailRow{
				ID: id, EventID: id, EventTitle: "Hamlet", TheaterName: "Globe", StartsAt: startsAt,
				Seats: []string{"A1", "A2"}, Status: "pending", TotalAmount: decimal.RequireFromString("20.00"),
			},
			want: &queries.BookingView{
				ID:          id,
				Event:       queries.EventView{ID: id, Title: "Hamlet", TheaterName: "Globe", StartsAt: startsAt},
				Seats:       []string{"A1", "A2"},
				Status:      "pending",
				TotalAmount: decimal.RequireFromString("20.00"),
			},
		},
		{
			name: "confirmed booking carries its payment",
			row: query.BookingDetailRow{
				ID: id, Status: "confirmed", TotalAmount: decimal.RequireFromString("20.00"),
				PaymentID: &paymentID, PaymentMethod: &method,
				PaymentAmount: decimal.NewNullDecimal(decimal.RequireFromString("20.00")), PaidAt: &paidAt,
			},
			want: &queries.BookingView{
				ID:          id,
				Status:      "confirmed",
				TotalAmount: decimal.RequireFromString("20.00"),
				Payment: &queries.PaymentView{
					ID: paymentID, Method: "Card", Amount: decimal.RequireFromString("20.00"), PaidAt: paidAt,
				},
			},
		},
		{
			name:    "missing booking",
			err:     pgx.ErrNoRows,
			wantErr: booking.ErrBookingNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			mockQueries.EXPECT().GetBookingDetail(ctx, nil, id).Return(tc.row, tc.err)

			got, err := readstore.NewBookingReadStore(mockQueries).FindBooking(ctx, nil, id)
			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.True(t, infra.IsKind(err, infra.KindNotFound))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBookingReadStore_FindEvent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	store := readstore.NewBookingReadStore(mockQueries)
	id := uuid.New()

	mockQueries.EXPECT().FindEvent(ctx, nil, id).Return(query.Event{}, pgx.ErrNoRows)
	_, err := store.FindEvent(ctx, nil, id)
	assert.True(t, errs.Is(err, booking.ErrEventNotFound), "got %v", err)

	mockQueries.EXPECT().FindEvent(ctx, nil, id).Return(query.Event{}, errors.New("conn reset"))
	_, err = store.FindEvent(ctx, nil, id)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
}

func TestBookingReadStore_ListBookings(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	after := startsAt
	afterID := uuid.New()

	mockQueries.EXPECT().ListBookingsPage(ctx, nil, query.ListBookingsPageParams{
		AfterCreatedAt: &after,
		AfterID:        &afterID,
		Limit:          21,
	}).Return([]query.BookingDetailRow{{ID: uuid.New(), Status: "cancelled"}}, nil)

	views, err := readstore.NewBookingReadStore(mockQueries).ListBookings(ctx, nil, &after, &afterID, 21)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "cancelled", views[0].Status)
	assert.Nil(t, views[0].Payment)
}
