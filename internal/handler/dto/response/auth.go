package response

import "github.com/google/uuid"

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	AdminID     uuid.UUID `json:"adminId"`
	Email       string    `json:"email"`
	ExpiresIn   int64     `json:"expiresIn"`
}
