package usecase

import (
	"context"
	"testing"
	"time"

	"insight-srv/internal/analytics"
	"insight-srv/internal/classifier"
	classifierUC "insight-srv/internal/classifier/usecase"
	engagementUC "insight-srv/internal/engagement/usecase"
	"insight-srv/internal/model"
	"insight-srv/internal/video"
	"insight-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideo struct {
	stats       model.VideoStats
	statsErr    error
	comments    []model.Comment
	commentsErr error
	requested   int
}

func (f *fakeVideo) ResolveVideoID(url string) (string, error) {
	id := video.ExtractVideoID(url)
	if id == "" {
		return "", video.ErrInvalidURL
	}
	return id, nil
}

func (f *fakeVideo) GetStatistics(context.Context, string) (model.VideoStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeVideo) GetComments(_ context.Context, _ string, max int) ([]model.Comment, error) {
	f.requested = max
	return f.comments, f.commentsErr
}

type fakePublisher struct {
	completed []analytics.AnalyzeOutput
}

func (p *fakePublisher) PublishCompleted(_ context.Context, out analytics.AnalyzeOutput) error {
	p.completed = append(p.completed, out)
	return nil
}

func (p *fakePublisher) PublishFailed(context.Context, string, string, error) error {
	return nil
}

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newUC(v video.UseCase, opts ...Option) analytics.UseCase {
	opts = append(opts, WithClock(func() time.Time { return fixedNow }))
	return New(
		log.NewNop(),
		v,
		classifierUC.New(classifier.DefaultLexicon(), classifier.DefaultConfig()),
		engagementUC.New(),
		analytics.Config{MaxComments: 50},
		opts...,
	)
}

func sampleVideo() *fakeVideo {
	return &fakeVideo{
		stats: model.VideoStats{
			ID: "abc", Title: "Sample", Duration: "PT1H2M3S",
			ViewCount: "1500000", LikeCount: "2300", CommentCount: "42",
		},
		comments: []model.Comment{
			{ID: "1", Text: "This is amazing, I love it"},
			{ID: "2", Text: "terrible and boring"},
			{ID: "3", Text: "the video was fine"},
			{ID: "4", Text: "CLICK HERE for free money"},
		},
	}
}

func TestAnalyzeVideo(t *testing.T) {
	pub := &fakePublisher{}
	v := sampleVideo()
	uc := newUC(v, WithPublisher(pub))

	out, err := uc.AnalyzeVideo(context.Background(), analytics.AnalyzeInput{
		RequestID: "req-1",
		URL:       "https://www.youtube.com/watch?v=abc",
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", out.ID)
	assert.Equal(t, fixedNow, out.AnalyzedAt)
	assert.Equal(t, 50, v.requested)

	m := out.Metrics
	assert.Equal(t, 4, m.TotalComments)
	assert.Equal(t, 1, m.PositiveComments)
	assert.Equal(t, 1, m.NegativeComments)
	assert.Equal(t, 2, m.NeutralComments)
	assert.Equal(t, 1, m.SpamComments)
	assert.Equal(t, m.TotalComments, m.PositiveComments+m.NegativeComments+m.NeutralComments)

	assert.Equal(t, "1:02:03", out.Insights.Duration)
	assert.Equal(t, "1.5M", out.Insights.Views)
	assert.Equal(t, "2.3K", out.Insights.Likes)
	assert.Equal(t, "42", out.Insights.Comments)
	assert.Equal(t, 25.0, out.Insights.SpamShare)
	assert.Equal(t, "Neutral", out.Insights.SentimentLabel)

	assert.True(t, out.Comments[3].IsSpam)
	assert.Equal(t, model.SentimentPositive, out.Comments[0].Sentiment)
	require.Len(t, pub.completed, 1)
}

func TestAnalyzeVideoGeneratesID(t *testing.T) {
	out, err := newUC(sampleVideo()).AnalyzeVideo(context.Background(), analytics.AnalyzeInput{URL: "https://youtu.be/abc"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
}

func TestAnalyzeVideoCommentBudget(t *testing.T) {
	v := sampleVideo()
	uc := newUC(v)

	_, err := uc.AnalyzeVideo(context.Background(), analytics.AnalyzeInput{URL: "https://youtu.be/abc", MaxComments: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, v.requested)

	_, err = uc.AnalyzeVideo(context.Background(), analytics.AnalyzeInput{URL: "https://youtu.be/abc", MaxComments: 1000})
	require.NoError(t, err)
	assert.Equal(t, 50, v.requested)
}

func TestAnalyzeVideoWithoutComments(t *testing.T) {
	v := sampleVideo()
	v.comments = []model.Comment{}
	out, err := newUC(v).AnalyzeVideo(context.Background(), analytics.AnalyzeInput{URL: "https://youtu.be/abc"})
	require.NoError(t, err)
	assert.Zero(t, out.Metrics.TotalComments)
	assert.Equal(t, 5.0, out.Insights.CommunityHealth)
}

func TestAnalyzeVideoInvalidURL(t *testing.T) {
	_, err := newUC(sampleVideo()).AnalyzeVideo(context.Background(), analytics.AnalyzeInput{URL: "nope"})
	assert.ErrorIs(t, err, analytics.ErrInvalidURL)
}

func TestAnalyzeVideoStatsFailure(t *testing.T) {
	v := sampleVideo()
	v.statsErr = video.ErrVideoNotFound
	pub := &fakePublisher{}

	_, err := newUC(v, WithPublisher(pub)).AnalyzeVideo(context.Background(), analytics.AnalyzeInput{URL: "https://youtu.be/abc"})
	assert.ErrorIs(t, err, analytics.ErrDataUnavailable)
	assert.ErrorIs(t, err, video.ErrVideoNotFound)
	assert.Empty(t, pub.completed)
}

func TestAnalyzeVideoCommentsFailure(t *testing.T) {
	v := sampleVideo()
	v.commentsErr = video.ErrAPINotEnabled

	_, err := newUC(v).AnalyzeVideo(context.Background(), analytics.AnalyzeInput{URL: "https://youtu.be/abc"})
	assert.ErrorIs(t, err, video.ErrAPINotEnabled)
}
