//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"course-booking/internal/handler/httperr"
	"course-booking/internal/handler/middleware"
	"course-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/busy", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, errors.New("40001"), "the schedule is busy, please retry", nil)
	})
	r.GET("/missing", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errors.New("nf"), "course not found", nil)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	r.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errors.New("lost"))
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	router := newErrorRouter()

	t.Run("503 advertises Retry-After", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/busy", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "please retry")
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})

	t.Run("4xx has no Retry-After", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/missing", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "course not found")
		assert.Empty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("handler that wrote nothing gets 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
