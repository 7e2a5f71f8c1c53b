//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody mirrors the error envelope every failed request answers with.
type ErrorBody struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String()) {
		return
	}
	if targetStruct != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "Failed to decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and, when expectedKind is set, the
// machine-readable kind. The decoded envelope is returned for further checks.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedKind string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String())

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Failed to decode error response JSON: %s", w.Body.String())
	assert.NotEmpty(t, body.Error.Message)
	if expectedKind != "" {
		assert.Equal(t, expectedKind, body.Error.Kind, "Response error kind mismatch")
	}
	return body
}

// AssertRetryAfter checks the back-off hint sent with transient failures.
func AssertRetryAfter(t *testing.T, w *httptest.ResponseRecorder, seconds int) {
	t.Helper()
	assert.Equal(t, strconv.Itoa(seconds), w.Header().Get("Retry-After"))
}
