package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"legaldata-srv/internal/catalogue"
	"legaldata-srv/internal/catalogue/repository"
	"legaldata-srv/internal/model"
)

// Generate builds the catalogue README.
// Pipeline: Fetch → Build sections → Render → Write → Mirror → Snapshot → Notify
func (uc *implUseCase) Generate(ctx context.Context, input catalogue.GenerateInput) (catalogue.GenerateOutput, error) {
	runID := uc.newRunID()
	generatedAt := input.Date
	if generatedAt.IsZero() {
		generatedAt = uc.now()
	}

	out := catalogue.GenerateOutput{
		RunID:      runID,
		OutputPath: uc.config.OutputPath,
	}

	// Phase 1: Fetch and build one section per category
	for _, cat := range catalogue.Categories() {
		records, degraded := uc.fetchCoverage(ctx, cat.DocType)
		section := buildSection(cat, records)
		section.Degraded = degraded

		switch cat.DocType {
		case catalogue.DocTypeCases:
			out.Cases = section
		case catalogue.DocTypeLaws:
			out.Laws = section
		}
		uc.l.Infof(ctx, "catalogue.usecase.Generate: %s: %d rows, total %s", cat.DocType, len(section.Rows), catalogue.FormatCount(section.Total))
	}
	out.GrandTotal = out.Cases.Total + out.Laws.Total

	// Phase 2: Render
	content, err := renderReadme(readmeData{
		Date:  generatedAt,
		Cases: out.Cases,
		Laws:  out.Laws,
	})
	if err != nil {
		uc.l.Errorf(ctx, "catalogue.usecase.Generate: Render failed: %v", err)
		return out, fmt.Errorf("%w: %v", catalogue.ErrRenderFailed, err)
	}

	// Phase 3: Write the primary copy
	saveOpts := repository.SaveReadmeOptions{
		RunID:       runID,
		FileName:    filepath.Base(uc.config.OutputPath),
		Content:     []byte(content),
		GeneratedAt: generatedAt,
		Totals:      totalsOf(out),
	}
	if _, err := uc.readme.SaveReadme(ctx, saveOpts); err != nil {
		uc.l.Errorf(ctx, "catalogue.usecase.Generate: Write failed: %v", err)
		uc.notifyFailure(ctx, out, err)
		return out, fmt.Errorf("%w: %v", catalogue.ErrWriteFailed, err)
	}
	out.BytesWritten = len(saveOpts.Content)

	// Phase 4: Optional side effects. None of them fails the run.
	out.Mirrors = uc.mirror(ctx, saveOpts)
	out.Previous = uc.recordSnapshot(ctx, model.Snapshot{
		RunID:       runID,
		GeneratedAt: generatedAt,
		Totals:      saveOpts.Totals,
	})
	uc.notifySuccess(ctx, out)

	return out, nil
}

// fetchCoverage returns the records of one category keyed by dataset code.
// A failed fetch is logged and yields no records.
func (uc *implUseCase) fetchCoverage(ctx context.Context, docType string) (map[string]model.CoverageRecord, bool) {
	resp, err := uc.coverage.GetCoverage(ctx, docType)
	if err != nil {
		uc.l.Errorf(ctx, "catalogue.usecase.fetchCoverage: Error fetching %s coverage: %v", docType, err)
		return map[string]model.CoverageRecord{}, true
	}
	return model.IndexCoverageByDataset(resp.Results), false
}

func totalsOf(out catalogue.GenerateOutput) map[string]int64 {
	return map[string]int64{
		catalogue.DocTypeCases: out.Cases.Total,
		catalogue.DocTypeLaws:  out.Laws.Total,
	}
}
