package coverage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	pkghttp "legaldata-srv/pkg/http"
)

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.DefaultConfig())
}

// GetCoverage retrieves the dataset summaries for one document type.
func (c *coverageImpl) GetCoverage(ctx context.Context, docType string) (*CoverageResponse, error) {
	if docType == "" {
		return nil, ErrDocTypeRequired
	}

	q := url.Values{}
	q.Set(QueryDocType, docType)
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, PathCoverage, q.Encode())

	body, statusCode, err := c.httpClient.Get(ctx, endpoint, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, fmt.Errorf("failed to get coverage: %w", err)
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}

	var resp CoverageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal coverage: %w", err)
	}

	return &resp, nil
}
