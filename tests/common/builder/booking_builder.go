//go:build unit || e2e

package builder

import (
	"time"

	"seat-reservation/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var DefaultNow = time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

type ShowSeatBuilder struct {
	id      uuid.UUID
	eventID uuid.UUID
	seatID  uuid.UUID
	price   decimal.Decimal
	status  booking.SeatStatus
}

func NewShowSeatBuilder() *ShowSeatBuilder {
	return &ShowSeatBuilder{
		id:      uuid.New(),
		eventID: uuid.New(),
		seatID:  uuid.New(),
		price:   decimal.RequireFromString("12.50"),
		status:  booking.SeatAvailable,
	}
}

func (b *ShowSeatBuilder) WithID(id uuid.UUID) *ShowSeatBuilder {
	b.id = id
	return b
}

func (b *ShowSeatBuilder) WithEventID(id uuid.UUID) *ShowSeatBuilder {
	b.eventID = id
	return b
}

func (b *ShowSeatBuilder) WithPrice(price string) *ShowSeatBuilder {
	b.price = decimal.RequireFromString(price)
	return b
}

func (b *ShowSeatBuilder) WithStatus(status booking.SeatStatus) *ShowSeatBuilder {
	b.status = status
	return b
}

func (b *ShowSeatBuilder) Build() *booking.ShowSeat {
	return booking.ReconstructShowSeat(b.id, b.eventID, b.seatID, b.price, b.status)
}

// BuildMany returns n seats of the same event, copying every other field.
func (b *ShowSeatBuilder) BuildMany(n int) []*booking.ShowSeat {
	seats := make([]*booking.ShowSeat, n)
	for i := range seats {
		seats[i] = booking.ReconstructShowSeat(uuid.New(), b.eventID, uuid.New(), b.price, b.status)
	}
	return seats
}

type BookingBuilder struct {
	id        uuid.UUID
	userID    uuid.UUID
	eventID   uuid.UUID
	total     decimal.Decimal
	status    booking.Status
	createdAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:        uuid.New(),
		userID:    uuid.New(),
		eventID:   uuid.New(),
		total:     decimal.RequireFromString("25.00"),
		status:    booking.StatusPending,
		createdAt: DefaultNow,
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.userID = id
	return b
}

func (b *BookingBuilder) WithEventID(id uuid.UUID) *BookingBuilder {
	b.eventID = id
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.status = status
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.createdAt = t
	return b
}

func (b *BookingBuilder) Build() *booking.Booking {
	return booking.ReconstructBooking(b.id, b.userID, b.eventID, b.total, b.status, b.createdAt, b.createdAt)
}
