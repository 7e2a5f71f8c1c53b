package booking

import (
	"time"

	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", errs.Wrapf(ErrInvalidBookingStatus, "%q", s)
	}
	return status, nil
}

// Booking is a user's claim on a set of seats of one event.
type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	eventID     uuid.UUID
	totalAmount decimal.Decimal
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPendingBooking locks every seat and snapshots their summed price. Seats
// are mutated in place; on error none of the caller's state should be
// persisted.
func NewPendingBooking(clk clock.Clock, userID, eventID uuid.UUID, seats []*ShowSeat) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, errs.Wrap(ErrInvalidArgument, "user id is required")
	}
	if len(seats) == 0 {
		return nil, errs.Wrap(ErrInvalidArgument, "at least one seat is required")
	}
	for _, s := range seats {
		if s.EventID() != eventID {
			return nil, errs.Wrapf(ErrSeatNotFound, "seat %s does not belong to event %s", s.ID(), eventID)
		}
		if err := s.Lock(); err != nil {
			return nil, err
		}
	}

	now := clk.Now()
	return &Booking{
		id:          uuid.New(),
		userID:      userID,
		eventID:     eventID,
		totalAmount: TotalPrice(seats),
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(id, userID, eventID uuid.UUID, total decimal.Decimal, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:          id,
		userID:      userID,
		eventID:     eventID,
		totalAmount: total,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID {
	return b.id
}

func (b *Booking) UserID() uuid.UUID {
	return b.userID
}

func (b *Booking) EventID() uuid.UUID {
	return b.eventID
}

func (b *Booking) TotalAmount() decimal.Decimal {
	return b.totalAmount
}

func (b *Booking) Status() Status {
	return b.status
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}

func (b *Booking) OwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// ExpiredAt reports whether a Pending booking has outlived ttl at now.
func (b *Booking) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return b.status == StatusPending && b.createdAt.Before(now.Add(-ttl))
}

// Confirm moves a Pending booking to Confirmed and books its seats.
func (b *Booking) Confirm(clk clock.Clock, seats []*ShowSeat) error {
	if b.status != StatusPending {
		return errs.Wrapf(ErrInvalidState, "cannot confirm booking %s in status %s", b.id, b.status)
	}
	for _, s := range seats {
		if err := s.Book(); err != nil {
			return err
		}
	}
	b.status = StatusConfirmed
	b.updatedAt = clk.Now()
	return nil
}

// Cancel releases every seat regardless of whether it was Locked or Booked.
func (b *Booking) Cancel(clk clock.Clock, seats []*ShowSeat) error {
	if b.status == StatusCancelled {
		return errs.Wrapf(ErrAlreadyCancelled, "booking %s", b.id)
	}
	for _, s := range seats {
		if err := s.Release(); err != nil {
			return err
		}
	}
	b.status = StatusCancelled
	b.updatedAt = clk.Now()
	return nil
}
