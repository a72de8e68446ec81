package driven

import (
	"context"
	"net/http"
)

// Response is the result of one GET request.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// OK reports whether the status code is in the 2xx family.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport issues bounded GET requests. It is the only network
// primitive the resolver and walker consume; retry policy, if any,
// belongs behind this interface, never in the callers.
type Transport interface {
	// Get performs a GET request and returns status and body.
	// The error is non-nil only for transport-level failures; a
	// non-2xx status is returned in Response, not as an error.
	Get(ctx context.Context, url string) (*Response, error)

	// Probe reports whether a GET against url succeeds (2xx).
	Probe(ctx context.Context, url string) bool
}
