package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/config"
)

type Client struct {
	queryURL   string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the content store's GROQ query endpoint
func NewClient(cfg config.ContentConfig, logger *zap.Logger) *Client {
	host := "api.sanity.io"
	if cfg.UseCDN {
		host = "apicdn.sanity.io"
	}

	version := strings.TrimPrefix(cfg.APIVersion, "v")

	return &Client{
		queryURL: fmt.Sprintf("https://%s.%s/v%s/data/query/%s", cfg.ProjectID, host, version, cfg.Dataset),
		token:    cfg.Token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// queryResponse is the content store's response envelope
type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Execute runs a GROQ query with optional $-parameters and decodes the
// result into out. A null result leaves out untouched.
func (c *Client) Execute(ctx context.Context, query string, params map[string]interface{}, out interface{}) error {
	u, err := url.Parse(c.queryURL)
	if err != nil {
		return fmt.Errorf("failed to parse query URL: %w", err)
	}

	values := u.Query()
	values.Set("query", query)
	for name, value := range params {
		// Parameter values are JSON-encoded on the wire
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode parameter %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}
	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var envelope queryResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if out == nil || len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return nil
}
