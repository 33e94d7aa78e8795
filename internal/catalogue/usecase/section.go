package usecase

import (
	"fmt"

	"legaldata-srv/internal/catalogue"
	"legaldata-srv/internal/model"
	"legaldata-srv/pkg/util"
)

// buildSection walks the category order and renders one row per returned code.
func buildSection(cat catalogue.Category, records map[string]model.CoverageRecord) catalogue.Section {
	section := catalogue.Section{
		DocType: cat.DocType,
		Rows:    make([]string, 0, len(cat.Order)),
		Matched: make([]string, 0, len(cat.Order)),
	}

	for _, code := range cat.Order {
		rec, ok := records[code]
		if !ok {
			continue
		}
		section.Total += rec.NumberOfDocuments
		section.Rows = append(section.Rows, formatRow(cat, rec))
		section.Matched = append(section.Matched, code)
	}

	return section
}

// formatRow renders a Markdown table row. Padding counts runes and never truncates.
func formatRow(cat catalogue.Category, rec model.CoverageRecord) string {
	return fmt.Sprintf("| %-*s | %-*s | %s – %s | %s |",
		cat.CodeWidth, rec.Dataset,
		cat.DescWidth, rec.DescriptionEN,
		util.FormatISODate(rec.EarliestDocumentDate),
		util.FormatISODate(rec.LatestDocumentDate),
		catalogue.FormatCount(rec.NumberOfDocuments),
	)
}
