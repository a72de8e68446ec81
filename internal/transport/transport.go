// Package transport implements the HTTP content transport: single
// bounded GET requests with connection reuse, plus a 2xx probe.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"gitsniff/internal/core/ports/driven"
	"gitsniff/internal/logger"
)

// DefaultTimeout is the default connect/read timeout per request.
// The contents API mandates no timeout itself, so one is imposed here.
const DefaultTimeout = 30 * time.Second

// Ensure HTTP implements the interface.
var _ driven.Transport = (*HTTP)(nil)

// HTTP is a thin wrapper around an http.Client. The client is shared
// across requests so connections to the same host are reused.
type HTTP struct {
	client *http.Client
	header http.Header
}

// Option configures the transport.
type Option func(*HTTP)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(t *HTTP) {
		t.client.Timeout = d
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(t *HTTP) {
		t.header.Set(key, value)
	}
}

// New creates an HTTP transport.
func New(opts ...Option) *HTTP {
	t := &HTTP{
		client: &http.Client{Timeout: DefaultTimeout},
		header: make(http.Header),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Get performs a GET request and returns status, body and headers.
// A non-2xx status is not an error; transport failures are.
func (t *HTTP) Get(ctx context.Context, url string) (*driven.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	for key, values := range t.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", url, err)
	}

	return &driven.Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Header:     resp.Header,
	}, nil
}

// Probe reports whether a GET against url returns a 2xx status.
// Transport failures count as a failed probe.
func (t *HTTP) Probe(ctx context.Context, url string) bool {
	resp, err := t.Get(ctx, url)
	if err != nil {
		logger.Debug("probe %s failed: %v", url, err)
		return false
	}
	return resp.OK()
}
