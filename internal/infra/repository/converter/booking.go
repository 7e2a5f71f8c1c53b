package converter

import (
	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra/query"
)

func ShowSeatToDomain(row query.ShowSeat) (*booking.ShowSeat, error) {
	status, err := booking.ParseSeatStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructShowSeat(row.ID, row.EventID, row.SeatID, row.Price, status), nil
}

func ShowSeatsToDomain(rows []query.ShowSeat) ([]*booking.ShowSeat, error) {
	seats := make([]*booking.ShowSeat, 0, len(rows))
	for _, row := range rows {
		s, err := ShowSeatToDomain(row)
		if err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, nil
}

func BookingToDomain(row query.Booking) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(row.ID, row.UserID, row.EventID, row.TotalAmount, status, row.CreatedAt, row.UpdatedAt), nil
}

func BookingToInsertParams(b *booking.Booking) query.InsertBookingParams {
	return query.InsertBookingParams{
		ID:          b.ID(),
		UserID:      b.UserID(),
		EventID:     b.EventID(),
		TotalAmount: b.TotalAmount(),
		Status:      b.Status().String(),
		CreatedAt:   b.CreatedAt(),
	}
}

func PaymentToInsertParams(p *booking.Payment) query.InsertPaymentParams {
	return query.InsertPaymentParams{
		ID:            p.ID(),
		BookingID:     p.BookingID(),
		Amount:        p.Amount(),
		PaymentMethod: p.Method().String(),
		Status:        p.Status(),
		PaidAt:        p.PaidAt(),
	}
}
