package model

import "legaldata-srv/pkg/coverage"

// CoverageRecord is one dataset summary returned by the coverage API.
type CoverageRecord struct {
	Dataset       string
	DescriptionEN string
	DescriptionFR string

	// Raw ISO timestamps as sent by the API. They may be empty or malformed.
	EarliestDocumentDate string
	LatestDocumentDate   string

	NumberOfDocuments int64
}

// NewCoverageRecordFromAPI converts a coverage API result to model CoverageRecord.
func NewCoverageRecordFromAPI(r coverage.CoverageResult) CoverageRecord {
	n := r.NumberOfDocuments
	// Negative counts are treated as empty rather than subtracted from totals.
	if n < 0 {
		n = 0
	}
	return CoverageRecord{
		Dataset:              r.Dataset,
		DescriptionEN:        r.DescriptionEN,
		DescriptionFR:        r.DescriptionFR,
		EarliestDocumentDate: r.EarliestDocumentDate,
		LatestDocumentDate:   r.LatestDocumentDate,
		NumberOfDocuments:    n,
	}
}

// IndexCoverageByDataset keys records by dataset code. A repeated code keeps its last record.
func IndexCoverageByDataset(results []coverage.CoverageResult) map[string]CoverageRecord {
	out := make(map[string]CoverageRecord, len(results))
	for _, r := range results {
		out[r.Dataset] = NewCoverageRecordFromAPI(r)
	}
	return out
}
