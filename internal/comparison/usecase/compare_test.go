package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"insight-srv/internal/comparison"
	engagementUC "insight-srv/internal/engagement/usecase"
	"insight-srv/internal/model"
	"insight-srv/internal/video"
	"insight-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideo struct {
	mu      sync.Mutex
	stats   map[string]model.VideoStats
	errs    map[string]error
	fetched []string
}

func (f *fakeVideo) ResolveVideoID(url string) (string, error) {
	id := video.ExtractVideoID(url)
	if id == "" {
		return "", video.ErrInvalidURL
	}
	return id, nil
}

func (f *fakeVideo) GetStatistics(_ context.Context, id string) (model.VideoStats, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, id)
	f.mu.Unlock()
	if err := f.errs[id]; err != nil {
		return model.VideoStats{}, err
	}
	return f.stats[id], nil
}

func (f *fakeVideo) GetComments(context.Context, string, int) ([]model.Comment, error) {
	return nil, nil
}

type fakePublisher struct {
	results []comparison.ComparisonResult
	err     error
}

func (p *fakePublisher) PublishCompleted(_ context.Context, r comparison.ComparisonResult) error {
	p.results = append(p.results, r)
	return p.err
}

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newVideos() *fakeVideo {
	return &fakeVideo{
		stats: map[string]model.VideoStats{
			"aaa": {ID: "aaa", Title: "Big", ViewCount: "2000000", LikeCount: "100000", CommentCount: "10000"},
			"bbb": {ID: "bbb", Title: "Small", ViewCount: "10000", LikeCount: "50", CommentCount: "5"},
			"ccc": {ID: "ccc", Title: "Empty", ViewCount: "0", LikeCount: "0", CommentCount: "0"},
		},
		errs: map[string]error{},
	}
}

func newUC(v video.UseCase, opts ...Option) comparison.UseCase {
	opts = append(opts, WithClock(func() time.Time { return fixedNow }))
	return New(log.NewNop(), v, engagementUC.New(), opts...)
}

func TestCompareWinner(t *testing.T) {
	pub := &fakePublisher{}
	uc := newUC(newVideos(), WithPublisher(pub))

	res, err := uc.Compare(context.Background(), comparison.CompareInput{
		URL1: "https://www.youtube.com/watch?v=aaa",
		URL2: "https://youtu.be/bbb",
	})
	require.NoError(t, err)

	assert.Equal(t, comparison.WinnerItem1, res.Verdict.Winner)
	assert.Greater(t, res.Item1.Score.Composite-res.Item2.Score.Composite, 10.0)
	assert.Equal(t, "Big", res.Item1.Video.Title)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, fixedNow, res.ComparedAt)
	require.Len(t, pub.results, 1)
	assert.Equal(t, res.ID, pub.results[0].ID)
}

func TestCompareIdenticalIsTie(t *testing.T) {
	uc := newUC(newVideos())

	res, err := uc.Compare(context.Background(), comparison.CompareInput{
		URL1: "https://youtu.be/aaa",
		URL2: "https://www.youtube.com/embed/aaa",
	})
	require.NoError(t, err)
	assert.Equal(t, comparison.WinnerTie, res.Verdict.Winner)
}

func TestCompareZeroViews(t *testing.T) {
	uc := newUC(newVideos())

	res, err := uc.Compare(context.Background(), comparison.CompareInput{
		URL1: "https://youtu.be/ccc",
		URL2: "https://youtu.be/bbb",
	})
	require.NoError(t, err)
	assert.Zero(t, res.Item1.Metrics.EngagementRate)
	assert.Zero(t, res.Item1.Metrics.LikesToViewsRatio)
	assert.Zero(t, res.Item1.Metrics.CommentsToViewsRatio)
	assert.Zero(t, res.Item1.Score.Composite)
}

func TestCompareInvalidURLFailsBeforeFetch(t *testing.T) {
	videos := newVideos()
	uc := newUC(videos)

	_, err := uc.Compare(context.Background(), comparison.CompareInput{
		URL1: "https://youtu.be/aaa",
		URL2: "not a url",
	})
	assert.ErrorIs(t, err, comparison.ErrInvalidURL)
	assert.Empty(t, videos.fetched)
}

func TestComparePartialFailure(t *testing.T) {
	videos := newVideos()
	videos.errs["bbb"] = video.ErrQuotaExceeded
	pub := &fakePublisher{}
	uc := newUC(videos, WithPublisher(pub))

	res, err := uc.Compare(context.Background(), comparison.CompareInput{
		URL1: "https://youtu.be/aaa",
		URL2: "https://youtu.be/bbb",
	})
	assert.ErrorIs(t, err, comparison.ErrDataUnavailable)
	assert.ErrorIs(t, err, video.ErrQuotaExceeded)
	assert.Equal(t, comparison.ComparisonResult{}, res)
	assert.Empty(t, pub.results)
}

func TestComparePublishFailureIsIgnored(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	uc := newUC(newVideos(), WithPublisher(pub))

	_, err := uc.Compare(context.Background(), comparison.CompareInput{
		URL1: "https://youtu.be/aaa",
		URL2: "https://youtu.be/bbb",
	})
	assert.NoError(t, err)
}
