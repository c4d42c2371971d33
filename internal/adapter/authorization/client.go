package authorization

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paywallet/paywallet-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Client is a domain.AuthorizationGateway backed by a remote
// authorization service over HTTP
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new authorization service client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// authorizeRequest is the POST /authorize payload.
// The amount travels as a string to preserve decimal exactness.
type authorizeRequest struct {
	Amount string `json:"amount"`
}

// authorizeResponse is the service's decision payload
type authorizeResponse struct {
	Authorized bool   `json:"authorized"`
	Reason     string `json:"reason,omitempty"`
}

// Authorize posts the amount to the authorization service and maps the
// decision. A non-2xx status is a transport error, not a denial.
func (c *Client) Authorize(ctx context.Context, amount decimal.Decimal) (domain.AuthorizationResult, error) {
	payload, err := json.Marshal(authorizeRequest{Amount: amount.String()})
	if err != nil {
		return domain.AuthorizationResult{}, fmt.Errorf("failed to marshal authorize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/authorize", bytes.NewReader(payload))
	if err != nil {
		return domain.AuthorizationResult{}, fmt.Errorf("failed to build authorize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return domain.AuthorizationResult{}, fmt.Errorf("authorize request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.AuthorizationResult{}, fmt.Errorf("authorize request returned status %d: %s", resp.StatusCode, body)
	}

	var decision authorizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
		return domain.AuthorizationResult{}, fmt.Errorf("failed to decode authorize response: %w", err)
	}

	return domain.AuthorizationResult{
		IsAuthorized: decision.Authorized,
		Reason:       decision.Reason,
	}, nil
}
