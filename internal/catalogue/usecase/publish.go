package usecase

import (
	"context"
	"errors"

	"legaldata-srv/internal/catalogue"
	"legaldata-srv/internal/catalogue/repository"
	"legaldata-srv/internal/model"
	"legaldata-srv/pkg/discord"
)

// mirror copies the README to every configured mirror. Failures are logged and skipped.
func (uc *implUseCase) mirror(ctx context.Context, opts repository.SaveReadmeOptions) []catalogue.MirrorLocation {
	var locations []catalogue.MirrorLocation
	for _, m := range uc.mirrors {
		res, err := m.SaveReadme(ctx, opts)
		if err != nil {
			uc.l.Warnf(ctx, "catalogue.usecase.mirror: Mirror upload failed: %v", err)
			continue
		}
		for i, loc := range res.Locations {
			ml := catalogue.MirrorLocation{Location: loc}
			if i == 0 {
				ml.DownloadURL = res.DownloadURL
			}
			locations = append(locations, ml)
			uc.l.Infof(ctx, "catalogue.usecase.mirror: Mirrored README to %s", loc)
		}
	}
	return locations
}

// recordSnapshot logs per-category deltas against the previous run and stores the current one.
// It returns the previous snapshot, if any.
func (uc *implUseCase) recordSnapshot(ctx context.Context, cur model.Snapshot) *model.Snapshot {
	if uc.snapshots == nil {
		return nil
	}

	prev, err := uc.snapshots.GetLatestSnapshot(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			uc.l.Warnf(ctx, "catalogue.usecase.recordSnapshot: Failed to load previous snapshot: %v", err)
		}
		prev = nil
	}

	for _, cat := range catalogue.Categories() {
		if delta, ok := formatDelta(cur, prev, cat.DocType); ok {
			uc.l.Infof(ctx, "catalogue.usecase.recordSnapshot: %s %s", cat.DocType, delta)
		}
	}

	if err := uc.snapshots.SaveSnapshot(ctx, repository.SaveSnapshotOptions{
		Snapshot: cur,
		TTL:      uc.config.SnapshotTTL,
	}); err != nil {
		uc.l.Warnf(ctx, "catalogue.usecase.recordSnapshot: Failed to save snapshot: %v", err)
	}

	return prev
}

// notifySuccess sends a success embed, or a warning embed when a category fetch degraded.
func (uc *implUseCase) notifySuccess(ctx context.Context, out catalogue.GenerateOutput) {
	if uc.discord == nil {
		return
	}

	fields := summaryFields(out)
	var err error
	if out.Degraded() {
		err = uc.discord.SendWarning(ctx, "README generated with missing coverage",
			"At least one coverage fetch failed; its table is empty.", fields)
	} else {
		err = uc.discord.SendSuccess(ctx, "README generated", "The catalogue README was regenerated.", fields)
	}
	if err != nil {
		uc.l.Warnf(ctx, "catalogue.usecase.notifySuccess: Failed to send notification: %v", err)
	}
}

func (uc *implUseCase) notifyFailure(ctx context.Context, out catalogue.GenerateOutput, cause error) {
	if uc.discord == nil {
		return
	}
	if err := uc.discord.SendError(ctx, "README generation failed", "Could not write "+out.OutputPath, cause); err != nil {
		uc.l.Warnf(ctx, "catalogue.usecase.notifyFailure: Failed to send notification: %v", err)
	}
}

func summaryFields(out catalogue.GenerateOutput) []discord.EmbedField {
	cur := model.Snapshot{Totals: totalsOf(out)}
	field := func(name string, docType string, total int64, degraded bool) discord.EmbedField {
		value := catalogue.FormatCount(total)
		if delta, ok := formatDelta(cur, out.Previous, docType); ok {
			value += " (" + delta + ")"
		}
		if degraded {
			value += " (fetch failed)"
		}
		return discord.EmbedField{Name: name, Value: value, Inline: true}
	}

	fields := []discord.EmbedField{
		field("Cases", catalogue.DocTypeCases, out.Cases.Total, out.Cases.Degraded),
		field("Laws/Regulations", catalogue.DocTypeLaws, out.Laws.Total, out.Laws.Degraded),
		{Name: "Total documents", Value: catalogue.FormatCount(out.GrandTotal), Inline: true},
		{Name: "Run", Value: out.RunID},
	}
	if len(out.Mirrors) > 0 && out.Mirrors[0].DownloadURL != "" {
		fields = append(fields, discord.EmbedField{Name: "Download", Value: out.Mirrors[0].DownloadURL})
	}
	return fields
}
