// Package whoxy provides a client for the Whoxy WHOIS history and
// reverse-WHOIS REST API.
package whoxy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gnomegl/whoxy/pkg/models"
)

const (
	defaultBaseURL = "https://api.whoxy.com/"
	defaultTimeout = 30 * time.Second

	// statusSuccess is the success sentinel of the response envelope.
	statusSuccess = "1"
)

// Config contains configuration for the API client.
type Config struct {
	APIKey  string
	BaseURL string // defaults to the public Whoxy endpoint
	Timeout time.Duration
}

// Client queries the Whoxy API. One invocation performs exactly one GET.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a new API client from the given configuration.
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  config.APIKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// ValidateRequest checks the request invariants that must hold before a URL
// is built: a non-empty search value, and mode=domains only on keyword
// searches.
func ValidateRequest(req models.SearchRequest) error {
	if strings.TrimSpace(req.Value) == "" {
		return &ConfigError{Reason: fmt.Sprintf("%s search requires a value", req.Kind)}
	}
	if req.Mode == models.ModeDomains && req.Kind != models.KindKeyword {
		return &ConfigError{Reason: "mode 'domains' is only valid for keyword searches"}
	}
	return nil
}

// BuildURL assembles the request URL for a search. The page parameter is
// appended only when it differs from 1, and the mode parameter only when it
// differs from normal.
//
// The API accepts + as its space encoding; spaces are the only characters
// rewritten. Values containing other reserved characters (&, #, =) produce
// undefined query behavior. Known limitation of the upstream query format.
func (c *Client) BuildURL(req models.SearchRequest) string {
	var u string
	if req.Kind == models.KindHistory {
		u = fmt.Sprintf("%s?key=%s&history=%s", c.baseURL, c.apiKey, req.Value)
	} else {
		u = fmt.Sprintf("%s?key=%s&reverse=whois&%s=%s", c.baseURL, c.apiKey, req.Kind, req.Value)
		if req.Page != 1 {
			u += fmt.Sprintf("&page=%d", req.Page)
		}
		if req.Mode != models.ModeNormal && req.Mode != "" {
			u += fmt.Sprintf("&mode=%s", req.Mode)
		}
	}
	return strings.ReplaceAll(u, " ", "+")
}

// Search performs one API lookup. It returns the decoded response together
// with the raw body so that raw-JSON passthrough does not re-encode the
// payload. A status envelope other than success yields an *APIError.
func (c *Client) Search(ctx context.Context, req models.SearchRequest) (*models.APIResponse, []byte, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, nil, err
	}

	log.Debug().
		Str("kind", string(req.Kind)).
		Str("value", req.Value).
		Int("page", req.Page).
		Str("mode", string(req.Mode)).
		Msg("querying whoxy")

	body, err := c.get(ctx, c.BuildURL(req))
	if err != nil {
		return nil, nil, err
	}

	var response models.APIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if err := checkStatus(response.StatusCode, response.StatusReason); err != nil {
		return nil, nil, err
	}

	return &response, body, nil
}

// Balance queries the account=balance endpoint for remaining API credits.
func (c *Client) Balance(ctx context.Context) (*models.BalanceResponse, []byte, error) {
	u := strings.ReplaceAll(fmt.Sprintf("%s?key=%s&account=balance", c.baseURL, c.apiKey), " ", "+")

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, nil, err
	}

	var response models.BalanceResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if err := checkStatus(response.StatusCode, response.StatusReason); err != nil {
		return nil, nil, err
	}

	return &response, body, nil
}

// get issues the GET request and reads the full body. Transport failures and
// non-200 HTTP statuses are fatal; there are no retries.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// checkStatus maps the embedded status envelope onto the error taxonomy. A
// missing status_code is treated as success; some endpoints omit it.
func checkStatus(code models.FlexString, reason string) error {
	if code == "" || string(code) == statusSuccess {
		return nil
	}
	if reason == "" {
		reason = "Unknown error"
	}
	return &APIError{Message: reason}
}
