package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"insight-srv/internal/model"
	"insight-srv/internal/video/repository"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	pkgRedis.IRedis
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = ttl
	return nil
}

func TestSaveAndGetStatistics(t *testing.T) {
	fr := newFakeRedis()
	repo := New(fr, log.NewNop())
	ctx := context.Background()

	stats := model.VideoStats{ID: "abc", Title: "t", ViewCount: "10", PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.SaveStatistics(ctx, stats, time.Minute))
	assert.Equal(t, time.Minute, fr.ttls["video:stats:abc"])

	got, err := repo.GetStatistics(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestGetStatisticsMiss(t *testing.T) {
	_, err := New(newFakeRedis(), log.NewNop()).GetStatistics(context.Background(), "none")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestGetStatisticsFailure(t *testing.T) {
	fr := newFakeRedis()
	fr.getErr = errors.New("conn refused")
	_, err := New(fr, log.NewNop()).GetStatistics(context.Background(), "abc")
	assert.ErrorIs(t, err, repository.ErrCacheGetFailed)
}

func TestGetStatisticsCorrupt(t *testing.T) {
	fr := newFakeRedis()
	fr.data["video:stats:abc"] = "{"
	_, err := New(fr, log.NewNop()).GetStatistics(context.Background(), "abc")
	assert.ErrorIs(t, err, repository.ErrCacheGetFailed)
}

func TestSaveStatisticsFailure(t *testing.T) {
	fr := newFakeRedis()
	fr.setErr = errors.New("readonly")
	err := New(fr, log.NewNop()).SaveStatistics(context.Background(), model.VideoStats{ID: "abc"}, time.Minute)
	assert.ErrorIs(t, err, repository.ErrCacheSetFailed)
}
