package httperr

import (
	"net/http"
	"strconv"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// New builds a sentinel for transport-level failures that have no
// underlying cause.
func New(msg string) error {
	return errs.New(msg)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, err, resp)
}

// AbortWithEngineError answers with the status that matches the error kind.
// Transient failures ask the client to retry.
func AbortWithEngineError(c *gin.Context, err error) {
	kind := booking.KindOf(err)
	status, msg := StatusFor(kind)

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Kind = kind.String()
	if kind != booking.KindInternal {
		resp.Detail = err.Error()
	}

	if kind == booking.KindTransient {
		c.Header("Retry-After", strconv.Itoa(1))
	}
	abort(c, err, resp)
}

func StatusFor(kind booking.Kind) (int, string) {
	switch kind {
	case booking.KindNotFound:
		return http.StatusNotFound, "Resource not found"
	case booking.KindSeatUnavailable:
		return http.StatusConflict, "One or more seats are not available"
	case booking.KindInvalidState:
		return http.StatusConflict, "Booking cannot be changed in its current state"
	case booking.KindForbidden:
		return http.StatusForbidden, "Booking belongs to another user"
	case booking.KindInvalidArgument:
		return http.StatusBadRequest, "Invalid request"
	case booking.KindTransient:
		return http.StatusServiceUnavailable, "Temporarily unavailable, please retry"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
