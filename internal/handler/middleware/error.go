package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/handler/httperr"
	"seat-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the envelope a handler attached with httperr once the
// chain finishes. Handlers that wrote their own body are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// latest public error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, internalError())
		}
	}
}

// CustomRecovery turns a panic into a 500 INTERNAL envelope and logs where it
// came from.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err := errs.New(fmt.Sprint(rec))
			slog.Error("recovered from panic",
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.FullPath(),
				"stack", errs.ExtractStackLines(err, 8),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	resp.Error.Kind = booking.KindInternal.String()
	return resp
}
