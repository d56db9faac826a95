package dto

import (
	"time"

	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/domain"
)

// UserOutput is the externally visible projection of a user record.
// PasswordHash and Salt deliberately have no field here.
type UserOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserOutput(user *domain.User) UserOutput {
	return UserOutput{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
