// Package payment talks to the external payment-order provider. The core
// only needs an opaque order handle; verification and capture happen on the
// provider's side.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Order is the opaque handle returned by the provider.
type Order struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Provider creates payment orders.
type Provider interface {
	CreateOrder(ctx context.Context, amount int, currency, receipt string) (Order, error)
}

// Client is an HTTP-backed Provider. The caller supplies an *http.Client
// with its own timeout; requests also honor ctx cancellation.
type Client struct {
	httpClient *http.Client
	endpoint   string
	keyID      string
	keySecret  string
}

func NewClient(httpClient *http.Client, endpoint, keyID, keySecret string) *Client {
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		keyID:      keyID,
		keySecret:  keySecret,
	}
}

type createOrderRequest struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func (c *Client) CreateOrder(ctx context.Context, amount int, currency, receipt string) (Order, error) {
	payload, err := json.Marshal(createOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return Order{}, fmt.Errorf("marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/orders", bytes.NewReader(payload))
	if err != nil {
		return Order{}, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Order{}, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Order{}, fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return Order{}, fmt.Errorf("decode order response: %w", err)
	}
	return order, nil
}
