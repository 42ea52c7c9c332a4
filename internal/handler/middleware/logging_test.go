//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	"course-booking/internal/handler/middleware"
	"course-booking/internal/pkg/config"
	"course-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/courses/:id", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generated when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/courses/abc", nil, "")

		id := rec.Header().Get(middleware.RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("upstream id is reused", func(t *testing.T) {
		rec := httptest.Do(t, r, httptest.Request{
			Method:  http.MethodGet,
			Path:    "/courses/abc",
			Headers: map[string]string{middleware.RequestIDHeader: "edge-42"},
		})
		assert.Equal(t, "edge-42", rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("oversized upstream id is replaced", func(t *testing.T) {
		long := strings.Repeat("x", 200)
		rec := httptest.Do(t, r, httptest.Request{
			Method:  http.MethodGet,
			Path:    "/courses/abc",
			Headers: map[string]string{middleware.RequestIDHeader: long},
		})
		assert.NotEqual(t, long, rec.Header().Get(middleware.RequestIDHeader))
	})
}
