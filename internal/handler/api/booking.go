package api

import (
	"context"
	"net/http"

	"seat-reservation/internal/domain/booking"
	reqdto "seat-reservation/internal/handler/dto/request"
	resdto "seat-reservation/internal/handler/dto/response"
	"seat-reservation/internal/handler/httperr"
	"seat-reservation/internal/handler/middleware"
	"seat-reservation/internal/usecase/commands"
	"seat-reservation/internal/usecase/queries"
	"seat-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingUser = httperr.New("user id missing from context")
	errBadPath     = httperr.New("malformed path parameter")
	errBadBody     = httperr.New("malformed request body")
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
	retry    shared.RetryPolicy
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries, retry shared.RetryPolicy) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qs,
		retry:    retry,
	}
}

// @Summary Create booking
// @Description Lock the requested seats of an event and create a pending booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errBadBody, "Invalid request format", err.Error())
		return
	}

	result, err := shared.RetryTransient(c.Request.Context(), h.retry,
		func(ctx context.Context) (*commands.CreateReservationResult, error) {
			return h.commands.CreateReservation(ctx, req.EventID, req.ShowSeatIDs, userID)
		})
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary Confirm booking
// @Description Record payment for a pending booking and book its seats
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConfirmBookingRequest false "Payment details"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.ConfirmBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errBadBody, "Invalid request format", err.Error())
			return
		}
	}

	_, err := shared.RetryTransient(c.Request.Context(), h.retry, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, h.commands.ConfirmReservation(ctx, bookingID, userID, req.GetPaymentMethod())
	})
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewBookingStatus(bookingID, booking.StatusConfirmed, "Payment successful and booking confirmed!"))
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking and release its seats
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [put]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c)
	if !ok {
		return
	}

	_, err := shared.RetryTransient(c.Request.Context(), h.retry, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, h.commands.CancelReservation(ctx, bookingID, userID)
	})
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewBookingStatus(bookingID, booking.StatusCancelled, "Booking cancelled successfully"))
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListItemResponse
// @Router /api/bookings/my-bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	items, err := h.queries.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	resp, err := resdto.FromBookingListItems(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get my booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) GetMyBooking(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetUserBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUser, "Internal server error", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errBadPath, "Invalid ID format", c.Param("id"))
		return uuid.Nil, false
	}
	return id, true
}
