package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AnuragChougule/venuebook/internal/domain"
	"github.com/AnuragChougule/venuebook/internal/payment"
)

// OrderCreator is the minimal interface needed to open payment orders.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amount int, currency string) (payment.Order, error)
}

// HandleCreateOrder returns an HTTP handler that opens a payment order
// with the gateway.
func HandleCreateOrder(svc OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		order, err := svc.CreateOrder(r.Context(), req.Amount, req.Currency)
		if err != nil {
			switch err {
			case domain.ErrInvalidAmount:
				writeError(w, http.StatusBadRequest, codeInvalidAmount, err.Error())
			case domain.ErrPaymentUnavailable:
				writeError(w, http.StatusBadGateway, codePaymentUnavailable, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, orderResponse{
			ID:       order.ID,
			Amount:   order.Amount,
			Currency: order.Currency,
			Receipt:  order.Receipt,
		})
	}
}

type createOrderRequest struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}
