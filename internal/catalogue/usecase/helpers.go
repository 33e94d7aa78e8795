package usecase

import (
	"fmt"

	"legaldata-srv/internal/catalogue"
	"legaldata-srv/internal/model"
	"legaldata-srv/pkg/util"

	"github.com/google/uuid"
)

func newRunID() string {
	return uuid.New().String()
}

// formatDelta renders the change of one category since the previous snapshot, e.g. "+120 since 2025-05-01".
func formatDelta(cur model.Snapshot, prev *model.Snapshot, docType string) (string, bool) {
	d, ok := cur.Delta(prev, docType)
	if !ok {
		return "", false
	}
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	return fmt.Sprintf("%s%s since %s", sign, catalogue.FormatCount(d), util.DateToStr(prev.GeneratedAt)), true
}
