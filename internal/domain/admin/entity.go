package admin

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidEmail = errors.New("invalid email format")

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Admin is an operator allowed to manage courses and override bookings.
type Admin struct {
	id           uuid.UUID
	email        string
	passwordHash string
	isActive     bool
	lastLoginAt  *time.Time
}

func NormalizeEmail(s string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(e) {
		return "", ErrInvalidEmail
	}
	return e, nil
}

func NewAdmin(email, passwordHash string) (*Admin, error) {
	e, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return &Admin{
		id:           uuid.New(),
		email:        e,
		passwordHash: passwordHash,
		isActive:     true,
	}, nil
}

func Reconstruct(id uuid.UUID, email, passwordHash string, isActive bool, lastLoginAt *time.Time) *Admin {
	return &Admin{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		isActive:     isActive,
		lastLoginAt:  lastLoginAt,
	}
}

func (a *Admin) ID() uuid.UUID           { return a.id }
func (a *Admin) Email() string           { return a.email }
func (a *Admin) PasswordHash() string    { return a.passwordHash }
func (a *Admin) IsActive() bool          { return a.isActive }
func (a *Admin) LastLoginAt() *time.Time { return a.lastLoginAt }
