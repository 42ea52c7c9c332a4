package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// CategoryRM uses a string id so synthesized placeholders ("default-1")
// can share the type with stored rows.
type CategoryRM struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"isActive"`
	Order       int     `json:"order"`
	Placeholder bool    `json:"placeholder"`
}

type AdminRM struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}
