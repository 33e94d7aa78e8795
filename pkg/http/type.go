package http

import (
	"net/http"
	"time"
)

// ClientConfig holds configuration for HTTP client.
type ClientConfig struct {
	Timeout time.Duration
	// Retries is the number of extra attempts after a transport error or 5xx response.
	Retries   int
	RetryWait time.Duration
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}
