package model

import (
	"testing"
	"time"

	"legaldata-srv/pkg/coverage"

	"github.com/stretchr/testify/assert"
)

func TestIndexCoverageByDataset(t *testing.T) {
	idx := IndexCoverageByDataset([]coverage.CoverageResult{
		{Dataset: "SCC", DescriptionEN: "first", NumberOfDocuments: 1},
		{Dataset: "FCA", DescriptionEN: "appeal", NumberOfDocuments: 2},
		{Dataset: "SCC", DescriptionEN: "second", NumberOfDocuments: 3},
		{Dataset: "ONCA", NumberOfDocuments: -5},
	})

	assert.Len(t, idx, 3)
	assert.Equal(t, "second", idx["SCC"].DescriptionEN)
	assert.Equal(t, int64(3), idx["SCC"].NumberOfDocuments)
	assert.Equal(t, int64(0), idx["ONCA"].NumberOfDocuments)
}

func TestSnapshotDelta(t *testing.T) {
	cur := Snapshot{Totals: map[string]int64{"cases": 120, "laws": 10}}
	prev := &Snapshot{GeneratedAt: time.Now(), Totals: map[string]int64{"cases": 100}}

	d, ok := cur.Delta(prev, "cases")
	assert.True(t, ok)
	assert.Equal(t, int64(20), d)

	_, ok = cur.Delta(prev, "laws")
	assert.False(t, ok)

	_, ok = cur.Delta(nil, "cases")
	assert.False(t, ok)
}
