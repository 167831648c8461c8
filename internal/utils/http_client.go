package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures a client returned by NewHTTPClient.
// Zero fields leave the resty defaults untouched.
type HTTPClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "http://localhost:5173/api"})
//	resp, err := client.R().Get("/v1/private/datasets/42")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.BaseURL != "" {
		client.SetBaseURL(strings.TrimRight(opts.BaseURL, "/"))
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	for k, v := range opts.Headers {
		if v != "" {
			client.SetHeader(k, v)
		}
	}

	return &HTTPClient{Client: client}
}
