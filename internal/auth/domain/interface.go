package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/domain UserRepository

import "context"

// UserRepository is the storage contract the directory must satisfy. The
// in-memory store is the default; a durable backend (postgres) implements
// the same interface. GetByEmail and GetByID return (nil, nil) when no
// record exists.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// Create adds the record under the uniqueness constraint. It returns
	// autherror.ErrEmailAlreadyInUse when the normalized email is taken;
	// the check and the insert are a single atomic step.
	Create(ctx context.Context, user *User) error
}
