//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"course-booking/internal/handler/middleware"

	"github.com/stretchr/testify/assert"
)

// ClientHeader sets the browser client id used for applicant prefill.
func ClientHeader(clientID string) map[string]string {
	return map[string]string{middleware.ClientIDHeader: clientID}
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
