//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/jwt"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestGenerateAndValidate(t *testing.T) {
	clk := clock.NewMockClock(issuedAt)
	svc := jwt.NewService("secret", time.Hour, clk)
	adminID := uuid.New()

	token, err := svc.GenerateToken(adminID, "admin@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
	assert.Equal(t, issuedAt.Add(time.Hour), claims.ExpiresAt.Time)
	assert.Equal(t, jwt.Issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Errors(t *testing.T) {
	adminID := uuid.New()

	t.Run("expired after the configured duration", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		svc := jwt.NewService("secret", time.Hour, clk)
		token, err := svc.GenerateToken(adminID, "admin@example.com")
		require.NoError(t, err)

		clk.Set(issuedAt.Add(2 * time.Hour))
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		other := jwt.NewService("other", time.Hour, clk)
		token, err := other.GenerateToken(adminID, "admin@example.com")
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, clk).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("non HMAC algorithm is rejected", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		unsigned, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwt.Claims{
			AdminID: adminID,
			Role:    jwt.RoleAdmin,
			RegisteredClaims: jwtlib.RegisteredClaims{
				ExpiresAt: jwtlib.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		}).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, clk).ValidateToken(unsigned)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		foreign, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwt.Claims{
			AdminID: adminID,
			Role:    jwt.RoleAdmin,
			RegisteredClaims: jwtlib.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwtlib.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, clock.NewMockClock(issuedAt)).ValidateToken(foreign)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		forever, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwt.Claims{
			AdminID:          adminID,
			Role:             jwt.RoleAdmin,
			RegisteredClaims: jwtlib.RegisteredClaims{Issuer: jwt.Issuer},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, clock.NewMockClock(issuedAt)).ValidateToken(forever)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour, clock.NewMockClock(issuedAt)).ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
