package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.dropboxapi.com/2", 30*time.Second)
//	resp, err := client.R().Post("/users/get_current_account")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance whose requests
// are resolved against baseURL (trailing slashes trimmed) and bounded by
// timeout. An empty baseURL or non-positive timeout leaves the resty default.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New()
	if baseURL != "" {
		client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// BearerRequest returns a request carrying "Authorization: Bearer <token>".
func (c *HTTPClient) BearerRequest(token string) *resty.Request {
	return c.R().SetAuthToken(token)
}
