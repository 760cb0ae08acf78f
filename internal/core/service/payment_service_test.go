package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type stubPaymentProvider struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (p *stubPaymentProvider) CreateIntent(_ context.Context, amountMinorUnits int64, currency string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.lastAmount = amountMinorUnits
	p.lastCurrency = currency
	return "pi_secret_123", nil
}

func TestPaymentService_CreateIntent_ConvertsToMinorUnits(t *testing.T) {
	provider := &stubPaymentProvider{}
	svc := NewPaymentService(provider, zerolog.Nop())

	secret, err := svc.CreateIntent(context.Background(), 49.99)
	if err != nil {
		t.Fatalf("CreateIntent returned error: %v", err)
	}
	if secret != "pi_secret_123" {
		t.Fatalf("unexpected client secret: %s", secret)
	}
	if provider.lastAmount != 4999 {
		t.Fatalf("expected 4999 cents, got %d", provider.lastAmount)
	}
	if provider.lastCurrency != "usd" {
		t.Fatalf("expected usd, got %s", provider.lastCurrency)
	}
}

func TestPaymentService_CreateIntent_RoundsHalfCents(t *testing.T) {
	provider := &stubPaymentProvider{}
	svc := NewPaymentService(provider, zerolog.Nop())

	// 10.004 * 100 is not exactly representable in float64; Round keeps it at 1000.
	if _, err := svc.CreateIntent(context.Background(), 10.004); err != nil {
		t.Fatalf("CreateIntent returned error: %v", err)
	}
	if provider.lastAmount != 1000 {
		t.Fatalf("expected 1000 cents, got %d", provider.lastAmount)
	}
}

func TestPaymentService_CreateIntent_RejectsNonPositive(t *testing.T) {
	svc := NewPaymentService(&stubPaymentProvider{}, zerolog.Nop())

	if _, err := svc.CreateIntent(context.Background(), 0); err == nil {
		t.Fatalf("expected error for zero price")
	}
	if _, err := svc.CreateIntent(context.Background(), -5); err == nil {
		t.Fatalf("expected error for negative price")
	}
}

func TestPaymentService_CreateIntent_ProviderFailure(t *testing.T) {
	provider := &stubPaymentProvider{err: errors.New("stripe down")}
	svc := NewPaymentService(provider, zerolog.Nop())

	if _, err := svc.CreateIntent(context.Background(), 10); err == nil {
		t.Fatalf("expected provider error to surface")
	}
}
