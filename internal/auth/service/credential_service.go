package service

//go:generate mockgen -destination=../../mocks/mock_password_hasher.go -package=mocks github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/service PasswordHasher

import (
	"context"
	"strings"
	"time"

	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/domain"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/dto"
	autherror "github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/errors"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/pkg/constant"
	"github.com/google/uuid"
)

// PasswordHasher abstracts the key-derivation function so the service
// can be tested against a fake and the algorithm swapped without
// touching registration or verification logic.
type PasswordHasher interface {
	NewSalt() ([]byte, error)
	Derive(password string, salt []byte) ([]byte, error)
	Compare(candidate, stored []byte) bool
}

// CredentialService orchestrates registration and password verification
// on top of the hasher and the user repository. It never issues tokens
// and never writes the sign-in log; both are the caller's job.
type CredentialService struct {
	repo   domain.UserRepository
	hasher PasswordHasher

	// dummySalt feeds a burn derivation when the email is unknown, so
	// lookup misses cost the same as a wrong password.
	dummySalt []byte
}

func NewCredentialService(repo domain.UserRepository, hasher PasswordHasher) (*CredentialService, error) {
	dummySalt, err := hasher.NewSalt()
	if err != nil {
		return nil, err
	}

	return &CredentialService{
		repo:      repo,
		hasher:    hasher,
		dummySalt: dummySalt,
	}, nil
}

func (s *CredentialService) Register(ctx context.Context, input dto.SignupInput) (*domain.User, error) {
	if len(input.Password) < constant.MinPasswordLength {
		return nil, autherror.ErrWeakPassword
	}

	email := domain.NormalizeEmail(input.Email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	salt, err := s.hasher.NewSalt()
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Derive(input.Password, salt)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Class:        strings.TrimSpace(input.Class),
		RollNo:       strings.TrimSpace(input.RollNo),
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
		CreatedAt:    time.Now(),
	}

	// The repository resolves the duplicate-email race: of two
	// concurrent registrations, exactly one create succeeds.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID resolves the user behind a session token's subject. Returns
// (nil, nil) when the id is unknown.
func (s *CredentialService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Verify checks the supplied credentials. Unknown email and wrong
// password return the identical sentinel; nothing in the result
// distinguishes the two. Verify has no side effects.
func (s *CredentialService) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if user == nil {
		// burn a derivation so a miss is not observably faster
		_, _ = s.hasher.Derive(password, s.dummySalt)
		return nil, autherror.ErrInvalidCredentials
	}

	candidate, err := s.hasher.Derive(password, user.Salt)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Compare(candidate, user.PasswordHash) {
		return nil, autherror.ErrInvalidCredentials
	}

	return user, nil
}
