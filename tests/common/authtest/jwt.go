//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/config"
	"course-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, adminID uuid.UUID, email string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock(time.UTC))
	token, err := service.GenerateToken(adminID, email)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token whose expiry is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, adminID uuid.UUID, email string) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-48 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Hour, past)
	token, err := service.GenerateToken(adminID, email)
	require.NoError(t, err)
	return token
}
