package ports

import (
	"context"

	"github.com/stayfinder/booking-api/internal/core/domain"
)

// UserRepository is the credential store: a durable mapping from email to
// account record. Create expects User.PasswordHash to already hold the bcrypt
// hash; implementations must reject a duplicate email with domain.ErrUserExists.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
