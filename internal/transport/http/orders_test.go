package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AnuragChougule/venuebook/internal/domain"
	"github.com/AnuragChougule/venuebook/internal/payment"
)

type fakeOrderService struct {
	order payment.Order
	err   error
}

func (f *fakeOrderService) CreateOrder(ctx context.Context, amount int, currency string) (payment.Order, error) {
	if f.err != nil {
		return payment.Order{}, f.err
	}
	return f.order, nil
}

func TestHandleCreateOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			body:           `{"amount":50000,"currency":"INR"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"id":"order_123"`,
		},
		{
			name:           "invalid json",
			body:           `{"amount":`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "invalid_request_body",
		},
		{
			name:           "bad amount",
			body:           `{"amount":0}`,
			serviceErr:     domain.ErrInvalidAmount,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "invalid_amount",
		},
		{
			name:           "gateway down",
			body:           `{"amount":50000}`,
			serviceErr:     domain.ErrPaymentUnavailable,
			expectedStatus: http.StatusBadGateway,
			expectedSubstr: "payment_unavailable",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeOrderService{
				order: payment.Order{ID: "order_123", Amount: 50000, Currency: "INR", Receipt: "receipt_1"},
				err:   tc.serviceErr,
			}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			HandleCreateOrder(svc)(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tc.expectedStatus, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tc.expectedSubstr) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tc.expectedSubstr)
			}
		})
	}
}
