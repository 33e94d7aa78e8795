package model

import "time"

// Snapshot records the per-category totals of one generator run.
type Snapshot struct {
	RunID       string           `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Totals      map[string]int64 `json:"totals"`
}

// Delta returns the change of one category total against prev.
// ok is false when prev is nil or has no total for docType.
func (s Snapshot) Delta(prev *Snapshot, docType string) (delta int64, ok bool) {
	if prev == nil {
		return 0, false
	}
	before, found := prev.Totals[docType]
	if !found {
		return 0, false
	}
	return s.Totals[docType] - before, true
}
