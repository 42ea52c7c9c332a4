//go:build unit || e2e || integration

package builder

import (
	"time"

	"course-booking/internal/domain/admin"
	reqdto "course-booking/internal/handler/dto/request"
	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// AdminBuilder covers both the login payload and the stored admin row.
type AdminBuilder struct {
	ID           uuid.UUID
	Email        string
	Password     string
	PasswordHash string
	IsActive     bool
	LastLoginAt  *time.Time
}

func NewAdminBuilder() *AdminBuilder {
	return &AdminBuilder{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Password: "password123",
		IsActive: true,
	}
}

func (b *AdminBuilder) With(mutate func(*AdminBuilder)) *AdminBuilder {
	mutate(b)
	return b
}

func (b *AdminBuilder) WithEmail(email string) *AdminBuilder {
	b.Email = email
	return b
}

func (b *AdminBuilder) WithPassword(plain string) *AdminBuilder {
	b.Password = plain
	return b
}

// WithHash sets the stored bcrypt hash; hashing is slow, so callers share one.
func (b *AdminBuilder) WithHash(hash string) *AdminBuilder {
	b.PasswordHash = hash
	return b
}

func (b *AdminBuilder) AsInactive() *AdminBuilder {
	b.IsActive = false
	return b
}

func (b *AdminBuilder) BuildDomain() *admin.Admin {
	return admin.Reconstruct(b.ID, b.Email, b.PasswordHash, b.IsActive, b.LastLoginAt)
}

func (b *AdminBuilder) BuildReadModel() readmodel.AdminRM {
	return readmodel.AdminRM{
		ID:          b.ID,
		Email:       b.Email,
		IsActive:    b.IsActive,
		LastLoginAt: b.LastLoginAt,
	}
}

func (b *AdminBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}
