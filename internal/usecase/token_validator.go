package usecase

import (
	"errors"

	"course-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrNotAdmin = errors.New("token does not carry the admin role")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.Role != jwt.RoleAdmin {
		return uuid.Nil, "", ErrNotAdmin
	}
	return claims.AdminID, claims.Role, nil
}
