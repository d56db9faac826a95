package domain

import (
	"strings"
	"time"
)

// User is the stored credential record. PasswordHash and Salt must never
// leave the process boundary; handlers expose dto.UserOutput instead.
type User struct {
	ID           string
	Name         string
	Class        string
	RollNo       string
	Email        string
	PasswordHash []byte
	Salt         []byte
	CreatedAt    time.Time
}

// NormalizeEmail is the canonical form used for storage, lookup and the
// uniqueness constraint. Both the repository and the service apply it so
// case or whitespace variants of one address always collide.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
