package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/domain"
	autherror "github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository is the durable alternative to the in-memory store. The
// users table carries a unique index on email; the email column always
// holds the normalized form.
type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, class, roll_no, email, password_hash, salt, created_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, domain.NormalizeEmail(email)))
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, class, roll_no, email, password_hash, salt, created_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO users (id, name, class, roll_no, email, password_hash, salt, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (email) DO NOTHING
    `, user.ID, user.Name, user.Class, user.RollNo, domain.NormalizeEmail(user.Email),
		user.PasswordHash, user.Salt, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrEmailAlreadyInUse
	}

	return nil
}

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Class, &user.RollNo,
		&user.Email, &user.PasswordHash, &user.Salt, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &user, nil
}
