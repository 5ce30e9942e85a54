package service

import (
	"context"
	"errors"
	"time"

	"github.com/stayfinder/booking-api/internal/core/domain"
	"github.com/stayfinder/booking-api/internal/core/ports"
)

// AuthService implements registration and login on top of the credential
// store, the password hasher, and the token service.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register hashes the plaintext before the record ever reaches the store, then
// logs the new account in. A duplicate email surfaces as domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.mint(created.ID)
}

// Login verifies credentials and mints a session. Unknown email and wrong
// password both return domain.ErrInvalidCredentials so callers cannot
// enumerate accounts. No account state is mutated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.mint(user.ID)
}

func (s *AuthService) mint(userID string) (*domain.Session, error) {
	token, expiresAt, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: token, UserID: userID, ExpiresAt: expiresAt}, nil
}
