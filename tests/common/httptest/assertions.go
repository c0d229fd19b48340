//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"campsite-reservation/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and, for 2xx with a target, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "failed to decode body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains
// expectedErrorMsg. An empty expectedErrorMsg skips the message check.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	resp := decodeError(t, w)
	if expectedErrorMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedErrorMsg, "error message mismatch")
	}
	return resp
}

// AssertViolations expects a 400 naming exactly the given fields.
func AssertViolations(t *testing.T, w *httptest.ResponseRecorder, fields ...string) {
	t.Helper()

	assert.Equal(t, 400, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp struct {
		Detail []httperr.FieldViolation `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to decode body: %s", w.Body.String())

	got := make([]string, 0, len(resp.Detail))
	for _, v := range resp.Detail {
		got = append(got, v.Field)
	}
	assert.ElementsMatch(t, fields, got)
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httperr.Response {
	t.Helper()

	var resp httperr.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to decode error body: %s", w.Body.String())
	return resp
}
