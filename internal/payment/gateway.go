// Package payment holds the client for the external payment gateway. The
// gateway is an opaque collaborator: the only call made is order creation
// and its response is relayed to the caller verbatim.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// Order is the gateway's order object, decoded loosely so new gateway
// fields pass through without code changes.
type Order = map[string]any

// Client talks to the gateway's REST API using key id/secret basic auth.
type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
}

// NewClient builds a gateway client. baseURL is an optional override used
// in tests and for sandbox environments.
func NewClient(keyID, keySecret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateOrder opens a payment order for the given amount in the smallest
// currency unit. Currency defaults to INR and receipt may be empty. The
// gateway response is returned as-is; any transport or gateway error is
// wrapped into a single generic failure for the handler to surface.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (Order, error) {
	if currency == "" {
		currency = "INR"
	}
	payload := map[string]any{
		"amount":   amount,
		"currency": currency,
	}
	if receipt != "" {
		payload["receipt"] = receipt
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("payment order failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("payment order failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment order failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment order failed: gateway status %d", resp.StatusCode)
	}
	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("payment order failed: %w", err)
	}
	return order, nil
}
