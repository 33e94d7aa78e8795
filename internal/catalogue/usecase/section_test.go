package usecase

import (
	"testing"

	"legaldata-srv/internal/catalogue"
	"legaldata-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildSection(t *testing.T) {
	records := map[string]model.CoverageRecord{
		"FC":   {Dataset: "FC", DescriptionEN: "Federal Court", NumberOfDocuments: 30},
		"SCC":  {Dataset: "SCC", DescriptionEN: "Supreme Court", NumberOfDocuments: 10},
		"XYZ":  {Dataset: "XYZ", DescriptionEN: "Unknown", NumberOfDocuments: 1000},
		"CHRT": {Dataset: "CHRT", DescriptionEN: "Human Rights Tribunal", NumberOfDocuments: 2},
	}

	section := buildSection(catalogue.CasesCategory, records)

	assert.Equal(t, catalogue.DocTypeCases, section.DocType)
	assert.Equal(t, []string{"SCC", "FC", "CHRT"}, section.Matched)
	assert.Len(t, section.Rows, 3)
	assert.Equal(t, int64(42), section.Total)
	for _, row := range section.Rows {
		assert.NotContains(t, row, "XYZ")
	}
}

func TestBuildSectionEmpty(t *testing.T) {
	section := buildSection(catalogue.LawsCategory, map[string]model.CoverageRecord{})
	assert.Empty(t, section.Rows)
	assert.Empty(t, section.Matched)
	assert.Equal(t, int64(0), section.Total)
}

func TestFormatRow(t *testing.T) {
	tcs := map[string]struct {
		cat  catalogue.Category
		rec  model.CoverageRecord
		want string
	}{
		"cases": {
			cat:  catalogue.CasesCategory,
			rec:  model.CoverageRecord{Dataset: "SCC", DescriptionEN: "Supreme Court", EarliestDocumentDate: "1980-01-01T00:00:00Z", LatestDocumentDate: "2024-06-01T00:00:00Z", NumberOfDocuments: 500},
			want: "| SCC    | Supreme Court                            | 1980-01-01 – 2024-06-01 | 500 |",
		},
		"laws": {
			cat:  catalogue.LawsCategory,
			rec:  model.CoverageRecord{Dataset: "LEGISLATION-FED", DescriptionEN: "Federal Acts", EarliestDocumentDate: "1867-07-01", LatestDocumentDate: "2025-03-15T00:00:00Z", NumberOfDocuments: 956},
			want: "| LEGISLATION-FED | Federal Acts              | 1867-07-01 – 2025-03-15 | 956 |",
		},
		"bad dates": {
			cat:  catalogue.CasesCategory,
			rec:  model.CoverageRecord{Dataset: "RAD", DescriptionEN: "Refugee Appeal Division", EarliestDocumentDate: "yesterday", NumberOfDocuments: 1234567},
			want: "| RAD    | Refugee Appeal Division                  | N/A – N/A | 1,234,567 |",
		},
		"padding counts runes": {
			cat:  catalogue.CasesCategory,
			rec:  model.CoverageRecord{Dataset: "TCC", DescriptionEN: "Cour canadienne de l'impôt", NumberOfDocuments: 1},
			want: "| TCC    | Cour canadienne de l'impôt               | N/A – N/A | 1 |",
		},
		"long values are not truncated": {
			cat:  catalogue.LawsCategory,
			rec:  model.CoverageRecord{Dataset: "REGULATIONS-FED-X", DescriptionEN: "Consolidated Federal Regulations", NumberOfDocuments: 4800},
			want: "| REGULATIONS-FED-X | Consolidated Federal Regulations | N/A – N/A | 4,800 |",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatRow(tc.cat, tc.rec))
		})
	}
}
