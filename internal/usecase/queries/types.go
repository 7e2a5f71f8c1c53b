package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	TheaterName string    `json:"theater_name"`
	StartsAt    time.Time `json:"starts_at"`
}

type BookingListItem struct {
	ID          uuid.UUID       `json:"id"`
	Event       EventView       `json:"event"`
	Seats       []string        `json:"seats"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PaymentView struct {
	ID     uuid.UUID       `json:"id"`
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt time.Time       `json:"paid_at"`
}

// BookingView is the detail of one booking, with its payment once confirmed.
type BookingView struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Event       EventView       `json:"event"`
	Seats       []string        `json:"seats"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Payment     *PaymentView    `json:"payment,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type EventSeatView struct {
	ShowSeatID uuid.UUID       `json:"show_seat_id"`
	SeatID     uuid.UUID       `json:"seat_id"`
	Label      string          `json:"label"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
}

type EventSeatMap struct {
	Event   EventView       `json:"event"`
	Seats   []EventSeatView `json:"seats"`
	Summary map[string]int  `json:"summary"`
}

type BookingPage struct {
	Items      []BookingView `json:"items"`
	NextCursor *Cursor       `json:"next_cursor,omitempty"`
}
