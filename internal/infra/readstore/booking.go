package readstore

import (
	"context"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/infra/query"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/pkg/pgconv"
	"seat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking.go -package=readstoremock

type BookingViewQueries interface {
	FindEvent(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Event, error)
	ListEventSeats(ctx context.Context, db query.DBTX, eventID uuid.UUID) ([]query.EventSeatRow, error)
	ListUserBookings(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]query.UserBookingRow, error)
	GetBookingDetail(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingDetailRow, error)
	ListBookingsPage(ctx context.Context, db query.DBTX, arg query.ListBookingsPageParams) ([]query.BookingDetailRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
}

func NewBookingReadStore(queries BookingViewQueries) *BookingReadStore {
	return &BookingReadStore{queries: queries}
}

func (r *BookingReadStore) FindEvent(ctx context.Context, db query.DBTX, id uuid.UUID) (*queries.EventView, error) {
	row, err := r.queries.FindEvent(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.NewNotFound("event "+id.String()), booking.ErrEventNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event", err)
	}
	view := toEventView(row)
	return &view, nil
}

func (r *BookingReadStore) ListEventSeats(ctx context.Context, db query.DBTX, eventID uuid.UUID) ([]queries.EventSeatView, error) {
	rows, err := r.queries.ListEventSeats(ctx, db, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event seats", err)
	}
	seats := make([]queries.EventSeatView, len(rows))
	for i, row := range rows {
		seats[i] = queries.EventSeatView{
			ShowSeatID: row.ShowSeatID,
			SeatID:     row.SeatID,
			Label:      row.Label,
			Category:   row.Category,
			Price:      row.Price,
			Status:     row.Status,
		}
	}
	return seats, nil
}

func (r *BookingReadStore) ListUserBookings(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]queries.BookingListItem, error) {
	rows, err := r.queries.ListUserBookings(ctx, db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	items := make([]queries.BookingListItem, len(rows))
	for i, row := range rows {
		items[i] = queries.BookingListItem{
			ID: row.ID,
			Event: queries.EventView{
				ID:          row.EventID,
				Title:       row.EventTitle,
				TheaterName: row.TheaterName,
				StartsAt:    row.StartsAt,
			},
			Seats:       row.Seats,
			Status:      row.Status,
			TotalAmount: row.TotalAmount,
			CreatedAt:   row.CreatedAt,
		}
	}
	return items, nil
}

func (r *BookingReadStore) FindBooking(ctx context.Context, db query.DBTX, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingDetail(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.NewNotFound("booking "+id.String()), booking.ErrBookingNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	view := toBookingView(row)
	return &view, nil
}

func (r *BookingReadStore) ListBookings(ctx context.Context, db query.DBTX, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int) ([]queries.BookingView, error) {
	rows, err := r.queries.ListBookingsPage(ctx, db, query.ListBookingsPageParams{
		AfterCreatedAt: afterCreatedAt,
		AfterID:        afterID,
		Limit:          int32(limit), //nolint:gosec // capped by queries.MaxListLimit
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	views := make([]queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = toBookingView(row)
	}
	return views, nil
}

func toEventView(row query.Event) queries.EventView {
	return queries.EventView{
		ID:          row.ID,
		Title:       row.Title,
		TheaterName: row.TheaterName,
		StartsAt:    row.StartsAt,
	}
}

func toBookingView(row query.BookingDetailRow) queries.BookingView {
	view := queries.BookingView{
		ID:     row.ID,
		UserID: row.UserID,
		Event: queries.EventView{
			ID:          row.EventID,
			Title:       row.EventTitle,
			TheaterName: row.TheaterName,
			StartsAt:    row.StartsAt,
		},
		Seats:       row.Seats,
		Status:      row.Status,
		TotalAmount: row.TotalAmount,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.PaymentID != nil {
		view.Payment = &queries.PaymentView{
			ID:     *row.PaymentID,
			Amount: row.PaymentAmount.Decimal,
		}
		if row.PaymentMethod != nil {
			view.Payment.Method = *row.PaymentMethod
		}
		if row.PaidAt != nil {
			view.Payment.PaidAt = *row.PaidAt
		}
	}
	return view
}
