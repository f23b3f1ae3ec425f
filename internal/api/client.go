// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/jeranaias/comet-tui/internal/commands"
	"github.com/jeranaias/comet-tui/internal/config"
	"github.com/jeranaias/comet-tui/internal/format"
)

// Configuration constants for the constelia.ai API.
const (
	// DefaultBaseURL is the single endpoint the API exposes.
	DefaultBaseURL = "https://constelia.ai/api.php"

	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit

	// rateBurst allows a short run of commands before the per-minute
	// limit starts pacing requests.
	rateBurst = 3
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// SECURITY: TLS verification required, TLS 1.2 minimum.
var sharedTransport = &http.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 10 * time.Second,
	TLSClientConfig: &tls.Config{
		MinVersion: tls.VersionTLS12,
	},
}

// Error variables for common API errors.
var (
	// ErrNotConfigured indicates the API key is not set.
	ErrNotConfigured = errors.New("API key not configured")

	// ErrResponseTooLarge indicates the response exceeded MaxResponseSize.
	ErrResponseTooLarge = errors.New("response exceeded maximum size")
)

// APIError represents a non-2xx response from the API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	if body != "" {
		return fmt.Sprintf("API request failed: HTTP %d: %s", e.Status, body)
	}
	return fmt.Sprintf("API request failed: HTTP %d", e.Status)
}

// Response is the outcome of one dispatched command. Exactly one of
// JSON and Raw is meaningful: JSON is non-nil when the body decoded as
// a JSON value, otherwise Raw holds the verbatim body text.
type Response struct {
	RequestID string
	Status    int
	JSON      *format.Value
	Raw       string
}

// =============================================================================
// CLIENT
// =============================================================================

// Client dispatches commands to the constelia.ai API. All requests go
// to a single endpoint; the command name and the member key travel as
// query parameters on every call.
type Client struct {
	key        string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a client from the loaded configuration. The key is
// taken from cfg.API.Key; a client without a key can be constructed
// but every Dispatch fails with ErrNotConfigured until SetKey is
// called.
func NewClient(cfg *config.Config) *Client {
	baseURL := cfg.API.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := time.Duration(cfg.API.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	perMinute := cfg.API.RatePerMinute
	if perMinute <= 0 {
		perMinute = 30
	}

	return &Client{
		key:     strings.TrimSpace(cfg.API.Key),
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: sharedTransport,
			Timeout:   timeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), rateBurst),
	}
}

// WithBaseURL sets a custom endpoint URL.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = strings.TrimSuffix(url, "/")
	return c
}

// WithHTTPClient swaps the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// SetKey replaces the member key. Safe to call when the key file
// changes on disk.
func (c *Client) SetKey(key string) {
	c.key = strings.TrimSpace(key)
}

// IsConfigured returns true if the client has a key.
func (c *Client) IsConfigured() bool {
	return c.key != ""
}

// =============================================================================
// SECURE LOGGING
// =============================================================================

// logRequest logs a dispatch without exposing the key or any argument
// values. Only the method, command name and request id appear.
func logRequest(id, method, command string) {
	log.Printf("api request [%s]: %s cmd=%s", id, method, command)
}

// logResponse logs the status and duration of a dispatch.
func logResponse(id string, status int, duration time.Duration) {
	log.Printf("api response [%s]: %d (%v)", id, status, duration)
}

// =============================================================================
// DISPATCH
// =============================================================================

// Dispatch coerces args against the descriptor, applies the client-side
// rate limit, and performs the HTTP call. Commands with body parameters
// go out as a form POST; everything else is a GET.
func (c *Client) Dispatch(ctx context.Context, desc *commands.Descriptor, args map[string]string) (*Response, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	req, err := BuildRequest(desc, args)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	for k, vs := range req.Query {
		query[k] = vs
	}
	query.Set("cmd", req.Command)
	query.Set("key", c.key)
	requestURL := c.baseURL + "?" + query.Encode()

	id := uuid.NewString()

	var httpReq *http.Request
	method := http.MethodGet
	if len(req.Form) > 0 {
		method = http.MethodPost
		httpReq, err = http.NewRequestWithContext(ctx, method, requestURL, strings.NewReader(req.Form.Encode()))
		if err == nil {
			httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		httpReq, err = http.NewRequestWithContext(ctx, method, requestURL, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", "comet/1.0")

	logRequest(id, method, req.Command)
	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	logResponse(id, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	out := &Response{RequestID: id, Status: resp.StatusCode}
	if v, err := format.DecodeJSON(body); err == nil {
		out.JSON = v
	} else {
		out.Raw = string(body)
	}
	return out, nil
}

// readBody reads the response body with a size limit.
// SECURITY: Response size limit prevents memory exhaustion.
func readBody(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, MaxResponseSize+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) > MaxResponseSize {
		return nil, ErrResponseTooLarge
	}
	return body, nil
}
