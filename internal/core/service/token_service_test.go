package service

import (
	"errors"
	"testing"
	"time"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	identity, err := svc.Verify("Bearer " + token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if identity != "alice@x.com" {
		t.Fatalf("expected alice@x.com, got %s", identity)
	}
}

func TestTokenService_Issue_EmptyIdentity(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Issue(""); err == nil {
		t.Fatalf("expected error for empty identity")
	}
}

func TestTokenService_Verify_MissingHeader(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Verify(""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestTokenService_Verify_WrongScheme(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify("Token " + token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for wrong scheme, got %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for bare token, got %v", err)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("alice@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify("Bearer " + token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for forged token, got %v", err)
	}
}

func TestTokenService_Verify_ExpiredToken(t *testing.T) {
	// A negative-TTL service issues tokens that are already expired.
	issuer := &TokenService{secret: []byte("secret"), ttl: -time.Minute}
	verifier := NewTokenService("secret", time.Hour)

	token, err := issuer.Issue("alice@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify("Bearer " + token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for expired token, got %v", err)
	}
}

func TestTokenService_BearerSchemeCaseInsensitive(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	identity, err := svc.Verify("bearer " + token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if identity != "alice@x.com" {
		t.Fatalf("expected alice@x.com, got %s", identity)
	}
}
