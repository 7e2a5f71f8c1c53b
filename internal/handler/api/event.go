package api

import (
	"net/http"

	resdto "seat-reservation/internal/handler/dto/response"
	"seat-reservation/internal/handler/httperr"
	"seat-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	queries queries.BookingQueries
}

func NewEventHandler(qs queries.BookingQueries) *EventHandler {
	return &EventHandler{queries: qs}
}

// @Summary Event seat map
// @Description Every show seat of an event with its price and current status
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventSeatMapResponse
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/seats [get]
func (h *EventHandler) ListSeats(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		return
	}

	seatMap, err := h.queries.ListEventSeats(c.Request.Context(), eventID)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	resp, err := resdto.FromEventSeatMap(seatMap)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
