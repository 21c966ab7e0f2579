package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-deck-sync"

// HTTPClient embeds *resty.Client so callers add hooks and build requests
// with the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client bound to baseURL with its own
// connection pool. Resty's built-in retries stay disabled; retry policy
// belongs to the caller.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
