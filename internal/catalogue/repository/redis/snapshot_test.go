package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"legaldata-srv/internal/catalogue/repository"
	"legaldata-srv/internal/model"
	"legaldata-srv/pkg/log"
	pkgRedis "legaldata-srv/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data    map[string]string
	ttl     map[string]time.Duration
	failGet error
	failSet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if f.failSet != nil {
		return f.failSet
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttl[key] = ttl
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	if f.failGet != nil {
		return "", f.failGet
	}
	v, ok := f.data[key]
	if !ok {
		return "", pkgRedis.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeRedis) Close() error                   { return nil }
func (f *fakeRedis) Ping(ctx context.Context) error { return nil }

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	fr := newFakeRedis()
	repo := New(fr, log.NewNop())

	_, err := repo.GetLatestSnapshot(ctx)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	err = repo.SaveSnapshot(ctx, repository.SaveSnapshotOptions{
		Snapshot: model.Snapshot{RunID: "run-1", GeneratedAt: at, Totals: map[string]int64{"cases": 10, "laws": 2}},
		TTL:      time.Hour,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, fr.ttl[keyLatestSnapshot])

	got, err := repo.GetLatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.RunID)
	assert.True(t, at.Equal(got.GeneratedAt))
	assert.Equal(t, int64(10), got.Totals["cases"])
}

func TestGetLatestSnapshotErrors(t *testing.T) {
	ctx := context.Background()

	fr := newFakeRedis()
	fr.data[keyLatestSnapshot] = "{not json"
	_, err := New(fr, log.NewNop()).GetLatestSnapshot(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrSnapshotNotFound)

	boom := errors.New("connection reset")
	fr = newFakeRedis()
	fr.failGet = boom
	_, err = New(fr, log.NewNop()).GetLatestSnapshot(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestSaveSnapshotError(t *testing.T) {
	fr := newFakeRedis()
	fr.failSet = errors.New("READONLY")
	err := New(fr, log.NewNop()).SaveSnapshot(context.Background(), repository.SaveSnapshotOptions{})
	assert.Error(t, err)
}
