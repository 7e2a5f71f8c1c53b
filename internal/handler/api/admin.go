package api

import (
	"net/http"

	reqdto "seat-reservation/internal/handler/dto/request"
	resdto "seat-reservation/internal/handler/dto/response"
	"seat-reservation/internal/handler/httperr"
	"seat-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errBadQuery = httperr.New("malformed query string")

type AdminHandler struct {
	queries queries.BookingQueries
}

func NewAdminHandler(qs queries.BookingQueries) *AdminHandler {
	return &AdminHandler{queries: qs}
}

// @Summary List all bookings
// @Description Keyset-paginated listing of every booking, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (1-200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errBadQuery, "Invalid query parameters", err.Error())
		return
	}

	page, err := h.queries.ListAllBookings(c.Request.Context(), q.Limit, q.After)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	resp, err := resdto.FromBookingPage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Booking detail
// @Description Any booking with its seats and payment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id} [get]
func (h *AdminHandler) GetBooking(c *gin.Context) {
	bookingID, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetBookingDetail(c.Request.Context(), bookingID)
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
