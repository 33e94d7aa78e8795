package coverage

import pkghttp "legaldata-srv/pkg/http"

// CoverageConfig holds configuration for the coverage API client.
type CoverageConfig struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// CoverageResponse is the body of GET /coverage.
type CoverageResponse struct {
	Results []CoverageResult `json:"results"`
}

// CoverageResult is one dataset summary.
type CoverageResult struct {
	Dataset              string `json:"dataset"`
	DescriptionEN        string `json:"description_en"`
	DescriptionFR        string `json:"description_fr"`
	EarliestDocumentDate string `json:"earliest_document_date"`
	LatestDocumentDate   string `json:"latest_document_date"`
	NumberOfDocuments    int64  `json:"number_of_documents"`
}

// coverageImpl implements ICoverage.
type coverageImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
