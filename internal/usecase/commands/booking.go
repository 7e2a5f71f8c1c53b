package commands

import (
	"context"
	"log/slog"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type CreateReservationResult struct {
	BookingID   uuid.UUID
	TotalAmount decimal.Decimal
	Status      booking.Status
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, eventID uuid.UUID, seatIDs []uuid.UUID, userID uuid.UUID) (*CreateReservationResult, error)
	ConfirmReservation(ctx context.Context, bookingID, userID uuid.UUID, paymentMethod string) error
	CancelReservation(ctx context.Context, bookingID, userID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	recorder OperationRecorder
	logger   *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, recorder OperationRecorder, logger *slog.Logger) BookingCommands {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingCommandsImpl{
		uow:      uow,
		clock:    clk,
		recorder: recorder,
		logger:   logger,
	}
}

// CreateReservation locks the requested show seats of the event and records
// a Pending booking over them. Either every seat is claimed or none is.
func (c *bookingCommandsImpl) CreateReservation(
	ctx context.Context,
	eventID uuid.UUID,
	seatIDs []uuid.UUID,
	userID uuid.UUID,
) (result *CreateReservationResult, err error) {
	defer c.observe(OperationCreate, &err)()

	if err := booking.ValidateSeatSelection(seatIDs); err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Events().Exists(ctx, eventID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.Wrapf(booking.ErrEventNotFound, "event %s", eventID)
		}

		seats, err := tx.ShowSeats().LockForEvent(ctx, eventID, seatIDs)
		if err != nil {
			return err
		}

		b, err := booking.NewPendingBooking(c.clock, userID, eventID, seats)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b, seats); err != nil {
			return err
		}
		if err := tx.ShowSeats().SaveStatus(ctx, seats, booking.SeatAvailable); err != nil {
			return err
		}

		result = &CreateReservationResult{
			BookingID:   b.ID(),
			TotalAmount: b.TotalAmount(),
			Status:      b.Status(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("booking created",
		"booking_id", result.BookingID,
		"event_id", eventID,
		"user_id", userID,
		"seats", len(seatIDs),
		"total_amount", result.TotalAmount.StringFixed(2))
	return result, nil
}

// ConfirmReservation books the seats of a Pending booking and records its
// payment.
func (c *bookingCommandsImpl) ConfirmReservation(ctx context.Context, bookingID, userID uuid.UUID, paymentMethod string) (err error) {
	defer c.observe(OperationConfirm, &err)()

	method, err := booking.NewPaymentMethod(paymentMethod)
	if err != nil {
		return err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockOwnedBooking(ctx, tx, bookingID, userID)
		if err != nil {
			return err
		}
		if b.Status() != booking.StatusPending {
			return errs.Wrapf(booking.ErrInvalidState, "booking %s is %s", b.ID(), b.Status())
		}

		seats, err := tx.ShowSeats().LockByBookings(ctx, []uuid.UUID{b.ID()})
		if err != nil {
			return err
		}

		from := b.Status()
		if err := b.Confirm(c.clock, seats); err != nil {
			return err
		}
		if err := tx.Bookings().SaveStatus(ctx, b, from); err != nil {
			return err
		}
		if err := tx.ShowSeats().SaveStatus(ctx, seats, booking.SeatLocked); err != nil {
			return err
		}

		payment, err := booking.NewPayment(c.clock, b, method)
		if err != nil {
			return err
		}
		return tx.Payments().Create(ctx, payment)
	})
	if err != nil {
		return err
	}

	c.logger.Info("booking confirmed", "booking_id", bookingID, "user_id", userID, "payment_method", method.String())
	return nil
}

// CancelReservation cancels a Pending or Confirmed booking and frees its
// seats.
func (c *bookingCommandsImpl) CancelReservation(ctx context.Context, bookingID, userID uuid.UUID) (err error) {
	defer c.observe(OperationCancel, &err)()

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockOwnedBooking(ctx, tx, bookingID, userID)
		if err != nil {
			return err
		}
		if b.Status() == booking.StatusCancelled {
			return errs.Wrapf(booking.ErrAlreadyCancelled, "booking %s", b.ID())
		}

		seats, err := tx.ShowSeats().LockByBookings(ctx, []uuid.UUID{b.ID()})
		if err != nil {
			return err
		}

		from := b.Status()
		if err := b.Cancel(c.clock, seats); err != nil {
			return err
		}
		if err := tx.Bookings().SaveStatus(ctx, b, from); err != nil {
			return err
		}
		return tx.ShowSeats().SaveStatus(ctx, seats, booking.SeatLocked, booking.SeatBooked)
	})
	if err != nil {
		return err
	}

	c.logger.Info("booking cancelled", "booking_id", bookingID, "user_id", userID)
	return nil
}

func (c *bookingCommandsImpl) lockOwnedBooking(ctx context.Context, tx shared.Tx, bookingID, userID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().LockByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.OwnedBy(userID) {
		return nil, errs.Wrapf(booking.ErrForbidden, "booking %s", bookingID)
	}
	return b, nil
}

func (c *bookingCommandsImpl) observe(operation string, errp *error) func() {
	start := c.clock.Now()
	return func() {
		c.recorder.ObserveOperation(operation, *errp, c.clock.Now().Sub(start))
	}
}
