package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShowSeat struct {
	ID      uuid.UUID
	EventID uuid.UUID
	SeatID  uuid.UUID
	Price   decimal.Decimal
	Status  string
}

type Booking struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	EventID     uuid.UUID
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type InsertBookingParams struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	EventID     uuid.UUID
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
}

type UpdateBookingStatusParams struct {
	ID         uuid.UUID
	FromStatus string
	ToStatus   string
	UpdatedAt  time.Time
}

type UpdateShowSeatStatusParams struct {
	IDs        []uuid.UUID
	FromStatus []string
	ToStatus   string
}

type InsertPaymentParams struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	Amount        decimal.Decimal
	PaymentMethod string
	Status        string
	PaidAt        time.Time
}

// Read-side rows.

type Event struct {
	ID          uuid.UUID
	Title       string
	TheaterName string
	StartsAt    time.Time
}

type UserBookingRow struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	EventTitle  string
	TheaterName string
	StartsAt    time.Time
	Seats       []string
	Status      string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

type BookingDetailRow struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	EventID       uuid.UUID
	EventTitle    string
	TheaterName   string
	StartsAt      time.Time
	Seats         []string
	Status        string
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PaymentID     *uuid.UUID
	PaymentMethod *string
	PaymentAmount decimal.NullDecimal
	PaidAt        *time.Time
}

type EventSeatRow struct {
	ShowSeatID uuid.UUID
	SeatID     uuid.UUID
	Label      string
	Category   string
	Price      decimal.Decimal
	Status     string
}

type ListBookingsPageParams struct {
	AfterCreatedAt *time.Time
	AfterID        *uuid.UUID
	Limit          int32
}
