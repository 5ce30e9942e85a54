package ports

import (
	"context"
	"time"

	"github.com/stayfinder/booking-api/internal/core/domain"
)

// AuthService orchestrates credential verification and session issuance.
type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*domain.Session, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}

// TokenService signs and verifies compact, expiring session tokens. Validate
// returns the subject id, or domain.ErrInvalidToken for any malformed or
// expired input; no distinction is surfaced to the caller.
type TokenService interface {
	Issue(subjectID string) (token string, expiresAt time.Time, err error)
	Validate(token string) (subjectID string, err error)
}
