// Package stripepay implements the payment gateway port against the Stripe
// Checkout API. Charges are collected through hosted checkout sessions; the
// adapter only creates the session and hands its URL back to the caller.
package stripepay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"printshop/internal/core/ports"
)

const (
	// ProductionAPIBaseURL is the live Stripe API endpoint.
	ProductionAPIBaseURL = "https://api.stripe.com"

	defaultTimeout = 30 * time.Second
)

// ErrNotConfigured is returned when the client is used without a secret key.
var ErrNotConfigured = errors.New("stripe is not configured: secret key is missing")

// Config holds Stripe API configuration.
type Config struct {
	// SecretKey is the sk_... API key. An empty key leaves the gateway
	// unconfigured and every call fails with ErrNotConfigured.
	SecretKey string
	// BaseURL overrides the API endpoint, used in tests. Defaults to
	// ProductionAPIBaseURL.
	BaseURL string
}

// Client is the Stripe payment gateway adapter.
type Client struct {
	config     Config
	httpClient *http.Client
	baseURL    string
}

var _ ports.PaymentGateway = (*Client)(nil)

// NewClient creates a Stripe client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = ProductionAPIBaseURL
	}

	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
	}
}

// IsConfigured returns true if the Stripe secret key is set.
func (c *Client) IsConfigured() bool {
	return c.config.SecretKey != ""
}

// checkoutSession is the subset of the Stripe response the adapter needs.
type checkoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// stripeError is Stripe's error envelope.
type stripeError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentLink creates a hosted checkout session for one order and
// returns its URL.
func (c *Client) CreatePaymentLink(ctx context.Context, req ports.PaymentLinkRequest) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}
	if req.AmountCents <= 0 {
		return "", fmt.Errorf("invalid charge amount: %d", req.AmountCents)
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", "usd")
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(req.AmountCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", req.Description)
	form.Set("metadata[order_number]", req.OrderNumber)
	if req.CustomerEmail != "" {
		form.Set("customer_email", req.CustomerEmail)
	}

	session, err := c.createSession(ctx, form)
	if err != nil {
		return "", err
	}

	return session.URL, nil
}

func (c *Client) createSession(ctx context.Context, form url.Values) (*checkoutSession, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.config.SecretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr stripeError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("stripe error %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("stripe error %d: %s", resp.StatusCode, string(body))
	}

	var session checkoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode stripe response: %w", err)
	}
	if session.URL == "" {
		return nil, errors.New("stripe response did not include a checkout URL")
	}

	return &session, nil
}
