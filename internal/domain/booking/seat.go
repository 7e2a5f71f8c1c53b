package booking

import (
	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatLocked    SeatStatus = "locked"
	SeatBooked    SeatStatus = "booked"
)

// Every seat leaves Available only through Locked; there is no direct
// Available -> Booked edge.
var seatTransitions = map[SeatStatus][]SeatStatus{
	SeatAvailable: {SeatLocked},
	SeatLocked:    {SeatBooked, SeatAvailable},
	SeatBooked:    {SeatAvailable},
}

func (s SeatStatus) String() string {
	return string(s)
}

func (s SeatStatus) IsValid() bool {
	_, ok := seatTransitions[s]
	return ok
}

func (s SeatStatus) CanTransitionTo(next SeatStatus) bool {
	for _, allowed := range seatTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseSeatStatus(s string) (SeatStatus, error) {
	status := SeatStatus(s)
	if !status.IsValid() {
		return "", errs.Wrapf(ErrInvalidSeatStatus, "%q", s)
	}
	return status, nil
}

// ShowSeat is one physical seat bound to one event.
type ShowSeat struct {
	id      uuid.UUID
	eventID uuid.UUID
	seatID  uuid.UUID
	price   decimal.Decimal
	status  SeatStatus
}

func ReconstructShowSeat(id, eventID, seatID uuid.UUID, price decimal.Decimal, status SeatStatus) *ShowSeat {
	return &ShowSeat{
		id:      id,
		eventID: eventID,
		seatID:  seatID,
		price:   price,
		status:  status,
	}
}

func (s *ShowSeat) ID() uuid.UUID          { return s.id }
func (s *ShowSeat) EventID() uuid.UUID     { return s.eventID }
func (s *ShowSeat) SeatID() uuid.UUID      { return s.seatID }
func (s *ShowSeat) Price() decimal.Decimal { return s.price }
func (s *ShowSeat) Status() SeatStatus     { return s.status }
func (s *ShowSeat) IsAvailable() bool      { return s.status == SeatAvailable }

// Lock claims an Available seat for a Pending booking.
func (s *ShowSeat) Lock() error {
	if s.status != SeatAvailable {
		return errs.Wrapf(ErrSeatUnavailable, "seat %s is %s", s.id, s.status)
	}
	return s.transition(SeatLocked)
}

func (s *ShowSeat) Book() error {
	return s.transition(SeatBooked)
}

func (s *ShowSeat) Release() error {
	return s.transition(SeatAvailable)
}

func (s *ShowSeat) transition(next SeatStatus) error {
	if !s.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrInvalidSeatTransition, "seat %s: %s -> %s", s.id, s.status, next)
	}
	s.status = next
	return nil
}

// TotalPrice sums the prices the seats carry right now; the result is the
// snapshot stored on the booking.
func TotalPrice(seats []*ShowSeat) decimal.Decimal {
	total := decimal.Zero
	for _, s := range seats {
		total = total.Add(s.price)
	}
	return total
}

func SeatIDs(seats []*ShowSeat) []uuid.UUID {
	ids := make([]uuid.UUID, len(seats))
	for i, s := range seats {
		ids[i] = s.id
	}
	return ids
}

// ValidateSeatSelection rejects an empty or repeated set of show seat ids.
func ValidateSeatSelection(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return errs.Wrap(ErrInvalidArgument, "at least one seat is required")
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return errs.Wrap(ErrInvalidArgument, "seat id must not be nil")
		}
		if _, dup := seen[id]; dup {
			return errs.Wrapf(ErrInvalidArgument, "seat %s requested more than once", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
