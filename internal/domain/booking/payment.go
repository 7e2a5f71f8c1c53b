package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPaymentMethod   = "Card"
	maxPaymentMethodLength = 50

	PaymentCompleted = "completed"
)

type PaymentMethod struct {
	value string
}

// NewPaymentMethod falls back to DefaultPaymentMethod for a blank input.
func NewPaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PaymentMethod{value: DefaultPaymentMethod}, nil
	}
	if utf8.RuneCountInString(s) > maxPaymentMethodLength {
		return PaymentMethod{}, errs.Wrapf(ErrInvalidArgument, "payment method exceeds %d characters", maxPaymentMethodLength)
	}
	return PaymentMethod{value: s}, nil
}

func (m PaymentMethod) String() string {
	return m.value
}

// Payment is the settlement record written once when a booking is confirmed.
type Payment struct {
	id        uuid.UUID
	bookingID uuid.UUID
	amount    decimal.Decimal
	method    PaymentMethod
	status    string
	paidAt    time.Time
}

func NewPayment(clk clock.Clock, b *Booking, method PaymentMethod) (*Payment, error) {
	if b.Status() != StatusConfirmed {
		return nil, errs.Wrapf(ErrInvalidState, "payment requires a confirmed booking, got %s", b.Status())
	}
	return &Payment{
		id:        uuid.New(),
		bookingID: b.ID(),
		amount:    b.TotalAmount(),
		method:    method,
		status:    PaymentCompleted,
		paidAt:    clk.Now(),
	}, nil
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) BookingID() uuid.UUID    { return p.bookingID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Method() PaymentMethod   { return p.method }
func (p *Payment) Status() string          { return p.status }
func (p *Payment) PaidAt() time.Time       { return p.paidAt }
