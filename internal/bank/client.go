// Package bank is the HTTP client for the acquiring bank.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds both the connect and the full request phase of a
// bank call when no custom client is provided.
const DefaultTimeout = 10 * time.Second

// Request is the wire shape the acquiring bank expects. It is built for a
// single call and never persisted.
type Request struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

// Response is the acquiring bank's authorization result. A decline is a
// valid business outcome, not an error.
type Response struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// Client calls the acquiring bank over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a bank client. When hc is nil, a default client with
// bounded connect and request timeouts is used.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: DefaultTimeout}).DialContext,
			},
		}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// ProcessPayment submits the payment for authorization. Transport failures
// and non-2xx statuses return an *UpstreamError; declines do not. There are
// no retries.
func (c *Client) ProcessPayment(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode bank request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build bank request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode bank response: %w", err)}
	}
	return &result, nil
}
