package app

import (
	"context"
	"fmt"

	"github.com/AnuragChougule/venuebook/internal/clock"
	"github.com/AnuragChougule/venuebook/internal/domain"
	"github.com/AnuragChougule/venuebook/internal/payment"
)

type PaymentService struct {
	provider payment.Provider
	clock    clock.Clock
}

func NewPaymentService(provider payment.Provider, clk clock.Clock) *PaymentService {
	return &PaymentService{
		provider: provider,
		clock:    clk,
	}
}

const defaultCurrency = "INR"

// CreateOrder asks the provider for an order handle covering amount. A
// provider failure surfaces as ErrPaymentUnavailable so the caller can
// retry; the booking itself is never blocked on this call.
func (s *PaymentService) CreateOrder(ctx context.Context, amount int, currency string) (payment.Order, error) {
	if amount <= 0 {
		return payment.Order{}, domain.ErrInvalidAmount
	}
	if currency == "" {
		currency = defaultCurrency
	}

	receipt := fmt.Sprintf("receipt_%d", s.clock.Now().UnixMilli())
	order, err := s.provider.CreateOrder(ctx, amount, currency, receipt)
	if err != nil {
		return payment.Order{}, domain.ErrPaymentUnavailable
	}
	return order, nil
}
