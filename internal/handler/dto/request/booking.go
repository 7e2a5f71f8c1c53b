package request

import (
	"strings"

	"seat-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	EventID     uuid.UUID   `json:"event_id" binding:"required"`
	ShowSeatIDs []uuid.UUID `json:"show_seat_ids" binding:"required,min=1,max=50"`
}

type ConfirmBookingRequest struct {
	PaymentMethod *string `json:"payment_method,omitempty"`
}

// GetPaymentMethod returns the trimmed method, or "" to select the default.
func (r ConfirmBookingRequest) GetPaymentMethod() string {
	return strings.TrimSpace(patch.Coalesce(r.PaymentMethod, ""))
}

type ListBookingsQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}
