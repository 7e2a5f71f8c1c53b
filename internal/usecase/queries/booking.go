package queries

import (
	"context"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra/query"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

type BookingQueries interface {
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingListItem, error)
	GetUserBooking(ctx context.Context, bookingID, userID uuid.UUID) (*BookingView, error)
	ListEventSeats(ctx context.Context, eventID uuid.UUID) (*EventSeatMap, error)
	ListAllBookings(ctx context.Context, limit int, after string) (*BookingPage, error)
	GetBookingDetail(ctx context.Context, bookingID uuid.UUID) (*BookingView, error)
}

// BookingViewStore runs each read on the handle it is given, so several reads
// can share one read-only transaction.
type BookingViewStore interface {
	FindEvent(ctx context.Context, db query.DBTX, id uuid.UUID) (*EventView, error)
	ListEventSeats(ctx context.Context, db query.DBTX, eventID uuid.UUID) ([]EventSeatView, error)
	ListUserBookings(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]BookingListItem, error)
	FindBooking(ctx context.Context, db query.DBTX, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, db query.DBTX, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	uow   shared.UnitOfWork
	store BookingViewStore
}

func NewBookingQueries(uow shared.UnitOfWork, store BookingViewStore) BookingQueries {
	return &bookingQueriesImpl{uow: uow, store: store}
}

func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingListItem, error) {
	var items []BookingListItem
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		items, err = q.store.ListUserBookings(ctx, db, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetUserBooking hides bookings of other users behind NotFound.
func (q *bookingQueriesImpl) GetUserBooking(ctx context.Context, bookingID, userID uuid.UUID) (*BookingView, error) {
	view, err := q.GetBookingDetail(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if view.UserID != userID {
		return nil, errs.Wrapf(booking.ErrBookingNotFound, "booking %s", bookingID)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListEventSeats(ctx context.Context, eventID uuid.UUID) (*EventSeatMap, error) {
	var seatMap *EventSeatMap
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		event, err := q.store.FindEvent(ctx, db, eventID)
		if err != nil {
			return err
		}
		seats, err := q.store.ListEventSeats(ctx, db, eventID)
		if err != nil {
			return err
		}
		seatMap = &EventSeatMap{
			Event:   *event,
			Seats:   seats,
			Summary: summarize(seats),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seatMap, nil
}

func summarize(seats []EventSeatView) map[string]int {
	summary := map[string]int{
		booking.SeatAvailable.String(): 0,
		booking.SeatLocked.String():    0,
		booking.SeatBooked.String():    0,
	}
	for _, s := range seats {
		summary[s.Status]++
	}
	return summary
}

// ListAllBookings pages through every booking, newest first.
func (q *bookingQueriesImpl) ListAllBookings(ctx context.Context, limit int, after string) (*BookingPage, error) {
	limit = ValidateLimit(limit)

	var (
		afterCreatedAt *time.Time
		afterID        *uuid.UUID
	)
	if after != "" {
		t, id, err := DecodeAfterCursor(after)
		if err != nil {
			return nil, err
		}
		afterCreatedAt, afterID = &t, &id
	}

	var items []BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		items, err = q.store.ListBookings(ctx, db, afterCreatedAt, afterID, limit+1)
		return err
	})
	if err != nil {
		return nil, err
	}

	page := &BookingPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		last := page.Items[limit-1]
		page.NextCursor = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return page, nil
}

func (q *bookingQueriesImpl) GetBookingDetail(ctx context.Context, bookingID uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		view, err = q.store.FindBooking(ctx, db, bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
