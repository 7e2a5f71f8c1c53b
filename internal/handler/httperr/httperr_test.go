//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/handler/httperr"
	"seat-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind   booking.Kind
		status int
	}{
		{booking.KindNotFound, http.StatusNotFound},
		{booking.KindSeatUnavailable, http.StatusConflict},
		{booking.KindInvalidState, http.StatusConflict},
		{booking.KindForbidden, http.StatusForbidden},
		{booking.KindInvalidArgument, http.StatusBadRequest},
		{booking.KindTransient, http.StatusServiceUnavailable},
		{booking.KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			status, msg := httperr.StatusFor(tt.kind)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func abortWith(t *testing.T, err error) (*httptest.ResponseRecorder, httperr.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.AbortWithEngineError(c, err)

	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	return w, resp
}

func TestAbortWithEngineError(t *testing.T) {
	t.Run("transient asks for a retry", func(t *testing.T) {
		w, resp := abortWith(t, errs.Mark(errs.New("deadlock"), booking.ErrTransient))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
		assert.Equal(t, "TRANSIENT", resp.Error.Kind)
	})

	t.Run("domain errors carry their message as detail", func(t *testing.T) {
		w, resp := abortWith(t, errs.Wrap(booking.ErrSeatUnavailable, "seat A1"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Empty(t, w.Header().Get("Retry-After"))
		assert.Equal(t, "SEAT_UNAVAILABLE", resp.Error.Kind)
		assert.Contains(t, resp.Detail, "seat A1")
	})

	t.Run("internal errors hide the cause", func(t *testing.T) {
		w, resp := abortWith(t, errs.New("pq: relation does not exist"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL", resp.Error.Kind)
		assert.Nil(t, resp.Detail)
	})
}

func TestAbortWithErrorPanicsOnNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil)
	})
}
