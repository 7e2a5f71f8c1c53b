//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentMethod(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "blank falls back to default", input: "  ", want: booking.DefaultPaymentMethod},
		{name: "trimmed", input: " PayPay ", want: "PayPay"},
		{name: "50 characters", input: strings.Repeat("x", 50), want: strings.Repeat("x", 50)},
		{name: "multibyte within limit", input: strings.Repeat("円", 50), want: strings.Repeat("円", 50)},
		{name: "51 characters", input: strings.Repeat("x", 51), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.NewPaymentMethod(tc.input)
			if tc.wantErr {
				assert.True(t, errs.Is(err, booking.ErrInvalidArgument), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestNewPayment(t *testing.T) {
	clk := clock.NewMockClock(builder.DefaultNow)
	method, err := booking.NewPaymentMethod("")
	require.NoError(t, err)

	t.Run("confirmed booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).Build()

		p, err := booking.NewPayment(clk, b, method)
		require.NoError(t, err)
		assert.Equal(t, b.ID(), p.BookingID())
		assert.True(t, b.TotalAmount().Equal(p.Amount()))
		assert.Equal(t, booking.PaymentCompleted, p.Status())
		assert.Equal(t, builder.DefaultNow, p.PaidAt())
		assert.Equal(t, booking.DefaultPaymentMethod, p.Method().String())
	})

	t.Run("pending booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().Build()
		_, err := booking.NewPayment(clk, b, method)
		assert.True(t, errs.Is(err, booking.ErrInvalidState))
	})
}
