package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stayfinder/booking-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// JWTTokenService issues and validates HS256-signed session tokens. Tokens
// carry only sub/iat/exp; validity is decided entirely by the signature and
// the expiry claim, never by a store lookup.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

func (s *JWTTokenService) Issue(subjectID string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Validate returns the subject id of a well-signed, unexpired token. Every
// failure mode collapses to domain.ErrInvalidToken.
func (s *JWTTokenService) Validate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
