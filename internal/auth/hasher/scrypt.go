package hasher

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Fixed scrypt parameters. Changing them invalidates every stored hash,
// so they are compile-time constants rather than config.
const (
	scryptN = 32768
	scryptR = 8
	scryptP = 1
	saltLen = 16
	keyLen  = 64
)

type Scrypt struct{}

// NewScrypt runs a probe derivation so that invalid parameters abort
// process startup instead of failing on the first request.
func NewScrypt() (*Scrypt, error) {
	s := &Scrypt{}
	probe := make([]byte, saltLen)
	if _, err := s.Derive("startup-probe", probe); err != nil {
		return nil, fmt.Errorf("scrypt parameters rejected: %w", err)
	}
	return s, nil
}

// NewSalt returns a fresh cryptographically random salt, generated once
// per registration and never reused.
func (s *Scrypt) NewSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// Derive is deterministic for a given (password, salt) pair.
func (s *Scrypt) Derive(password string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
}

// Compare reports whether the two hashes are equal without leaking the
// position of the first differing byte. On length mismatch it still burns
// a full comparison before returning false.
func (s *Scrypt) Compare(candidate, stored []byte) bool {
	if len(candidate) != len(stored) {
		subtle.ConstantTimeCompare(stored, stored)
		return false
	}
	return subtle.ConstantTimeCompare(candidate, stored) == 1
}
