//go:build unit

package booking_test

import (
	"errors"
	"testing"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want booking.Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "event not found", err: errs.Wrap(booking.ErrEventNotFound, "x"), want: booking.KindNotFound},
		{name: "seat not found", err: booking.ErrSeatNotFound, want: booking.KindNotFound},
		{name: "booking not found", err: booking.ErrBookingNotFound, want: booking.KindNotFound},
		{name: "seat unavailable", err: booking.ErrSeatUnavailable, want: booking.KindSeatUnavailable},
		{name: "invalid state", err: booking.ErrInvalidState, want: booking.KindInvalidState},
		{name: "already cancelled", err: booking.ErrAlreadyCancelled, want: booking.KindInvalidState},
		{name: "forbidden", err: booking.ErrForbidden, want: booking.KindForbidden},
		{name: "invalid argument", err: booking.ErrInvalidArgument, want: booking.KindInvalidArgument},
		{name: "unknown", err: errors.New("boom"), want: booking.KindInternal},
		{
			name: "transient wins over domain marks",
			err:  errs.Mark(errs.Wrap(booking.ErrSeatUnavailable, "deadlock victim"), booking.ErrTransient),
			want: booking.KindTransient,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.KindOf(tc.err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want == booking.KindTransient, got.Retryable())
		})
	}
}
