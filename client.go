// Package mulenpay is a client SDK for the MulenPay payment-processing HTTP
// API: it issues authenticated REST requests to create, list, confirm, cancel
// and refund payments, manage subscriptions and fetch receipts.
package mulenpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mulenpay/mulenpay-go/pkg/config"
	"github.com/mulenpay/mulenpay-go/pkg/transport"
)

const defaultTimeout = 10 * time.Second

// Client is stateless aside from the credentials fixed at construction and
// is safe for concurrent use. Every call is a single synchronous
// request/response with no retries.
type Client struct {
	baseURL   string
	apiKey    string
	secretKey string
	validator *Validator
	c         *http.Client
}

func NewClient(cfg config.MulenPay) (*Client, error) {
	validator, err := NewValidator(Policy(cfg.ValidationPolicy))
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		secretKey: cfg.SecretKey,
		validator: validator,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}, nil
}

// do performs one authenticated API call and returns the response body
// verbatim. No schema is imposed on responses. A non-2xx status becomes an
// *APIError carrying the remote "message" when the error body decodes.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}

		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    apiMessage(respBody),
		}
	}

	return respBody, nil
}

func apiMessage(body []byte) string {
	var remote struct {
		Message string `json:"message"`
	}

	err := json.Unmarshal(body, &remote)
	if err == nil && remote.Message != "" {
		return remote.Message
	}

	return strings.TrimSpace(string(body))
}
