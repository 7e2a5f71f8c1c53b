package repository

import (
	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLockOrderViolation = errs.New("row lock protocol violated")

// LockTracker records the row locks a single transaction holds and enforces
// the acquisition order shared by every writer:
//
//  1. bookings before the show seats they claim
//  2. show seats in ascending id order (guaranteed by ORDER BY id ... FOR UPDATE)
//
// It also refuses writes to rows the transaction has not locked.
type LockTracker struct {
	seatsLocked    bool
	lockedSeats    map[uuid.UUID]struct{}
	lockedBookings map[uuid.UUID]struct{}
}

func NewLockTracker() *LockTracker {
	return &LockTracker{
		lockedSeats:    make(map[uuid.UUID]struct{}),
		lockedBookings: make(map[uuid.UUID]struct{}),
	}
}

func (l *LockTracker) beforeBookingLock() error {
	if l.seatsLocked {
		return errs.Wrap(ErrLockOrderViolation, "booking lock requested after show seat locks")
	}
	return nil
}

func (l *LockTracker) bookingsLocked(ids ...uuid.UUID) {
	for _, id := range ids {
		l.lockedBookings[id] = struct{}{}
	}
}

func (l *LockTracker) showSeatsLocked(ids ...uuid.UUID) {
	l.seatsLocked = true
	for _, id := range ids {
		l.lockedSeats[id] = struct{}{}
	}
}

func (l *LockTracker) requireSeats(ids []uuid.UUID) error {
	for _, id := range ids {
		if _, ok := l.lockedSeats[id]; !ok {
			return errs.Wrapf(ErrLockOrderViolation, "show seat %s written without a row lock", id)
		}
	}
	return nil
}

func (l *LockTracker) requireBookings(ids []uuid.UUID) error {
	for _, id := range ids {
		if _, ok := l.lockedBookings[id]; !ok {
			return errs.Wrapf(ErrLockOrderViolation, "booking %s written without a row lock", id)
		}
	}
	return nil
}
