package coverage

import (
	"context"
	"strings"
)

// ICoverage defines the interface for the coverage API client.
// Implementations are safe for concurrent use.
type ICoverage interface {
	GetCoverage(ctx context.Context, docType string) (*CoverageResponse, error)
}

// New creates a new coverage client. Returns the interface.
func New(cfg CoverageConfig) ICoverage {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &coverageImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}
