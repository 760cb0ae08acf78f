package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

// TokenService issues and verifies HS256 bearer credentials. Verification is
// stateless: the signature and expiry are all that ties a token to the
// system, nothing is stored server-side.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a credential for identity with the configured TTL. It performs
// no authentication of its own; see ports.TokenService.
func (s *TokenService) Issue(identity string) (string, error) {
	if identity == "" {
		return "", fmt.Errorf("issue token: empty identity")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": identity,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates a raw "Bearer <token>" header value and returns the
// embedded identity. All failure modes map to domain.ErrUnauthenticated so
// callers cannot distinguish a forged token from an expired one.
func (s *TokenService) Verify(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: missing authorization header", domain.ErrUnauthenticated)
	}

	parts := strings.SplitN(raw, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", fmt.Errorf("%w: malformed authorization header", domain.ErrUnauthenticated)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", fmt.Errorf("%w: invalid or expired token", domain.ErrUnauthenticated)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("%w: token carries no identity", domain.ErrUnauthenticated)
	}
	return email, nil
}
