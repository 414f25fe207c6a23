package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so application code can extend it without
// leaking resty configuration into every caller.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty-backed client rooted at baseURL. A zero
// timeout leaves resty's default (no timeout) in place; callers should pass
// a context deadline instead in that case.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Accept-Encoding", "gzip")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
