package response

import (
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/usecase/commands"
	"seat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CreateBookingResponse struct {
	BookingID   uuid.UUID       `json:"booking_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	Message     string          `json:"message"`
}

type BookingStatusResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
}

type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	TheaterName string    `json:"theater_name"`
	StartsAt    time.Time `json:"starts_at"`
}

type BookingListItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Event       EventResponse   `json:"event"`
	Seats       []string        `json:"seats"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PaymentResponse struct {
	ID     uuid.UUID       `json:"id"`
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt time.Time       `json:"paid_at"`
}

type BookingDetailResponse struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"user_id"`
	Event       EventResponse    `json:"event"`
	Seats       []string         `json:"seats"`
	Status      string           `json:"status"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Payment     *PaymentResponse `json:"payment,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type BookingPageResponse struct {
	Items      []BookingDetailResponse `json:"items"`
	NextCursor *string                 `json:"next_cursor,omitempty"`
}

type EventSeatResponse struct {
	ShowSeatID uuid.UUID       `json:"show_seat_id"`
	SeatID     uuid.UUID       `json:"seat_id"`
	Label      string          `json:"label"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
}

type EventSeatMapResponse struct {
	Event   EventResponse       `json:"event"`
	Seats   []EventSeatResponse `json:"seats"`
	Summary map[string]int      `json:"summary"`
}

func FromCreateResult(r *commands.CreateReservationResult) CreateBookingResponse {
	return CreateBookingResponse{
		BookingID:   r.BookingID,
		TotalAmount: r.TotalAmount,
		Status:      r.Status.String(),
		Message:     "Booking created and seats locked. Please complete payment to confirm.",
	}
}

func NewBookingStatus(id uuid.UUID, status booking.Status, message string) BookingStatusResponse {
	return BookingStatusResponse{BookingID: id, Status: status.String(), Message: message}
}

// The response types mirror the query views field by field; copier maps the
// nested event and payment structs.
func FromBookingListItems(items []queries.BookingListItem) ([]BookingListItemResponse, error) {
	out := make([]BookingListItemResponse, 0, len(items))
	if err := copier.Copy(&out, &items); err != nil {
		return nil, err
	}
	return out, nil
}

func FromBookingView(v *queries.BookingView) (*BookingDetailResponse, error) {
	var out BookingDetailResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromBookingPage(p *queries.BookingPage) (*BookingPageResponse, error) {
	out := &BookingPageResponse{Items: make([]BookingDetailResponse, 0, len(p.Items))}
	if err := copier.Copy(&out.Items, &p.Items); err != nil {
		return nil, err
	}
	if p.NextCursor != nil {
		out.NextCursor = &p.NextCursor.After
	}
	return out, nil
}

func FromEventSeatMap(m *queries.EventSeatMap) (*EventSeatMapResponse, error) {
	var out EventSeatMapResponse
	if err := copier.Copy(&out, m); err != nil {
		return nil, err
	}
	if out.Seats == nil {
		out.Seats = []EventSeatResponse{}
	}
	return &out, nil
}
