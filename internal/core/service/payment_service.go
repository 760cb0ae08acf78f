package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/summercamp/enrollment-api/internal/core/ports"
)

const paymentCurrency = "usd"

// PaymentService creates payment intents through the configured provider.
// It runs strictly after the authorization decision; a failed provider call
// is surfaced to the caller, never retried here.
type PaymentService struct {
	provider ports.PaymentProvider
	log      zerolog.Logger
}

func NewPaymentService(provider ports.PaymentProvider, log zerolog.Logger) *PaymentService {
	return &PaymentService{provider: provider, log: log}
}

// CreateIntent converts a major-unit price to cents and asks the provider
// for a payment intent.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf("create intent: price must be positive")
	}

	amount := int64(math.Round(price * 100))
	secret, err := s.provider.CreateIntent(ctx, amount, paymentCurrency)
	if err != nil {
		s.log.Error().Err(err).Int64("amount", amount).Msg("payment intent creation failed")
		return "", fmt.Errorf("create intent: %w", err)
	}

	s.log.Info().Int64("amount", amount).Msg("payment intent created")
	return secret, nil
}
