// Package provider contains the HTTP clients for the upstream quote APIs.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/conversor/internal/metrics"
)

var (
	// ErrUpstream wraps every failure caused by a provider response.
	ErrUpstream = errors.New("upstream error")
	// ErrMissingAPIKey is returned when a provider requiring a key has none.
	ErrMissingAPIKey = errors.New("upstream API key not configured")
)

const userAgent = "conversor/1.0"

// maxErrorBody bounds how much of an error response is kept in messages.
const maxErrorBody = 512

// HTTPClient is a small wrapper around http.Client shared by providers.
type HTTPClient struct {
	HTTP      *http.Client
	UserAgent string
}

// NewHTTPClient returns a client with pooled keep-alive connections and
// the given overall timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          50,
		MaxIdleConnsPerHost:   10,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &HTTPClient{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		UserAgent: userAgent,
	}
}

// transportError drops the request URL from err; query strings carry API keys.
func transportError(provider, operation string, err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%w: %s %s: %s: %w", ErrUpstream, provider, operation, uerr.Op, uerr.Err)
	}
	return fmt.Errorf("%w: %s %s: %w", ErrUpstream, provider, operation, err)
}

// getJSON performs a GET and decodes a 2xx JSON body into out.
// provider/operation label the upstream metrics.
func (c *HTTPClient) getJSON(ctx context.Context, provider, operation, url string, out any) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveUpstream(provider, operation, start, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return transportError(provider, operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %s %s: HTTP %d: %s", ErrUpstream, provider, operation, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: decoding json: %v", ErrUpstream, provider, operation, err)
	}
	return nil
}
