package memory

import (
	"context"
	"sync"

	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/domain"
	autherror "github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/errors"
)

// Store is the default in-memory user directory. It keeps a primary
// id index and a secondary email index; both are mutated under one lock
// so no caller can observe a record present in one index only.
type Store struct {
	mu      sync.Mutex
	users   map[string]*domain.User // id -> record
	byEmail map[string]string       // normalized email -> id
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (s *Store) Create(_ context.Context, user *domain.User) error {
	email := domain.NormalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return autherror.ErrEmailAlreadyInUse
	}

	stored := copyUser(user)
	stored.Email = email
	s.users[stored.ID] = stored
	s.byEmail[email] = stored.ID

	return nil
}

func (s *Store) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, nil
	}

	return copyUser(s.users[id]), nil
}

func (s *Store) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	return copyUser(user), nil
}

// copyUser detaches a record from its source, byte slices included, so
// neither side can mutate the other's credential material.
func copyUser(u *domain.User) *domain.User {
	c := *u
	c.PasswordHash = append([]byte(nil), u.PasswordHash...)
	c.Salt = append([]byte(nil), u.Salt...)
	return &c
}
