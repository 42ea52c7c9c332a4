package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"course-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always lets the prefill client id in and the retry and
// request id headers out, even when the configured lists forget them.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	headers := withHeader(cfg.AllowHeaders, ClientIDHeader)
	exposed := withHeader(withHeader(cfg.ExposeHeaders, retryAfterHeader), RequestIDHeader)

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     headers,
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_headers", headers)
	return cors.New(corsCfg)
}

func withHeader(list []string, name string) []string {
	want := http.CanonicalHeaderKey(name)
	if slices.ContainsFunc(list, func(h string) bool { return http.CanonicalHeaderKey(h) == want }) {
		return list
	}
	return append(slices.Clone(list), name)
}
