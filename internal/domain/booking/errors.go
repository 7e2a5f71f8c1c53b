package booking

import "seat-reservation/internal/pkg/errs"

var (
	ErrEventNotFound   = errs.New("event not found")
	ErrSeatNotFound    = errs.New("seat not found for event")
	ErrBookingNotFound = errs.New("booking not found")

	ErrSeatUnavailable = errs.New("seat is not available")

	ErrInvalidState     = errs.New("operation not allowed in current booking state")
	ErrAlreadyCancelled = errs.New("booking already cancelled")

	ErrForbidden = errs.New("booking belongs to another user")

	ErrTransient = errs.New("transient store failure")

	ErrInvalidArgument = errs.New("invalid argument")

	ErrInvalidSeatTransition = errs.New("invalid seat status transition")
	ErrInvalidBookingStatus  = errs.New("invalid booking status")
	ErrInvalidSeatStatus     = errs.New("invalid seat status")
)

// Kind is the coarse classification callers branch on.
type Kind string

const (
	KindNotFound        Kind = "NOT_FOUND"
	KindSeatUnavailable Kind = "SEAT_UNAVAILABLE"
	KindInvalidState    Kind = "INVALID_STATE"
	KindForbidden       Kind = "FORBIDDEN"
	KindTransient       Kind = "TRANSIENT"
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindInternal        Kind = "INTERNAL"
)

func (k Kind) String() string {
	return string(k)
}

// Retryable reports whether re-issuing the same operation may succeed.
func (k Kind) Retryable() bool {
	return k == KindTransient
}

// KindOf classifies err. Transient wins over everything else because a
// deadlock victim may also carry a domain mark from the aborted attempt.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errs.Is(err, ErrTransient):
		return KindTransient
	case errs.IsAny(err, ErrEventNotFound, ErrSeatNotFound, ErrBookingNotFound):
		return KindNotFound
	case errs.Is(err, ErrSeatUnavailable):
		return KindSeatUnavailable
	case errs.IsAny(err, ErrInvalidState, ErrAlreadyCancelled, ErrInvalidSeatTransition):
		return KindInvalidState
	case errs.Is(err, ErrForbidden):
		return KindForbidden
	case errs.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	default:
		return KindInternal
	}
}
