package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so the
	// caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	// ErrInvalidToken is the single outcome for malformed, tampered, and expired
	// tokens alike.
	ErrInvalidToken = errors.New("invalid token")
)

// User models a registered account. PasswordHash is the only credential field;
// the plaintext password is never stored on this struct after the write path
// has hashed it.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session is the artifact produced by a successful login: the signed token,
// the account it is bound to, and when the token stops being valid.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
