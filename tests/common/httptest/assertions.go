//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorBody mirrors httperr.Response on the wire.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail,omitempty"`
}

// AssertSuccessResponse checks the status and, for 2xx, decodes the body
// into target when one is given.
func AssertSuccessResponse(t testing.TB, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || wantStatus < 200 || wantStatus >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error message contains
// wantMsg. An empty wantMsg only checks the envelope shape.
func AssertErrorResponse(t testing.TB, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	body := DecodeError(t, w)
	assert.Equalf(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	if wantMsg != "" {
		assert.Contains(t, body.Error.Message, wantMsg)
	}
}

func DecodeError(t testing.TB, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()

	var body ErrorBody
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "undecodable error body: %s", w.Body.String())
	return body
}
