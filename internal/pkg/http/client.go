package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codermehran/Mo/internal/pkg/circuitbreaker"
)

// DefaultTimeout bounds every outbound provider call
const DefaultTimeout = 10 * time.Second

// ErrInvalidResponse is returned when a provider answers with a body that is not JSON
var ErrInvalidResponse = errors.New("invalid response body")

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Client talks JSON to an external provider with a bounded timeout and an optional breaker
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates a new HTTP client
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: strings.TrimRight(serviceURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithBreaker guards every call with cb
func (c *Client) WithBreaker(cb *circuitbreaker.CircuitBreaker) *Client {
	c.breaker = cb
	return c
}

// PostJSON sends body as JSON and decodes a JSON reply into out
func (c *Client) PostJSON(ctx context.Context, path string, headers map[string]string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, path, "application/json", headers, payload, out)
}

// PostForm sends a urlencoded form and decodes a JSON reply into out
func (c *Client) PostForm(ctx context.Context, path string, headers map[string]string, form url.Values, out interface{}) error {
	return c.do(ctx, path, "application/x-www-form-urlencoded", headers, []byte(form.Encode()), out)
}

func (c *Client) do(ctx context.Context, path, contentType string, headers map[string]string, payload []byte, out interface{}) error {
	call := func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Accept", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &HTTPError{StatusCode: resp.StatusCode, Body: string(data)}
		}
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return nil
	}

	if c.breaker == nil {
		return call(ctx)
	}
	return c.breaker.Execute(ctx, call)
}

func (c *Client) url(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path == "" {
		return c.BaseURL
	}
	return c.BaseURL + "/" + strings.TrimLeft(path, "/")
}
