package errors

import (
	"errors"
)

var (
	ErrWeakPassword      = errors.New("password must be at least 6 characters")
	ErrEmailAlreadyInUse = errors.New("email already in use")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must never be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
