package usecase

import (
	"context"
	"fmt"

	"insight-srv/internal/analytics"
	"insight-srv/internal/engagement"
	"insight-srv/internal/model"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) AnalyzeVideo(ctx context.Context, input analytics.AnalyzeInput) (analytics.AnalyzeOutput, error) {
	// 1. Resolve
	id, err := uc.videoUC.ResolveVideoID(input.URL)
	if err != nil {
		return analytics.AnalyzeOutput{}, fmt.Errorf("%w: %w", analytics.ErrInvalidURL, err)
	}

	// 2. Fetch statistics and comments concurrently
	var (
		stats    model.VideoStats
		comments []model.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := uc.videoUC.GetStatistics(gctx, id)
		if err != nil {
			return err
		}
		stats = s
		return nil
	})
	g.Go(func() error {
		cs, err := uc.videoUC.GetComments(gctx, id, uc.commentBudget(input.MaxComments))
		if err != nil {
			return err
		}
		comments = cs
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.AnalyzeVideo: fetching %s failed: %v", id, err)
		return analytics.AnalyzeOutput{}, fmt.Errorf("%w: %w", analytics.ErrDataUnavailable, err)
	}

	// 3. Classify and aggregate
	classified := uc.classifierUC.ClassifyComments(comments)
	counters := engagement.CountersFromStats(stats)
	metrics := uc.metricsUC.Calculate(counters, classified)

	requestID := input.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	out := analytics.AnalyzeOutput{
		ID:         requestID,
		Video:      stats,
		Counters:   counters,
		Metrics:    metrics,
		Comments:   classified,
		Insights:   buildInsights(stats, counters, metrics),
		AnalyzedAt: uc.clock(),
	}

	// 4. Announce
	if uc.publisher != nil {
		if err := uc.publisher.PublishCompleted(ctx, out); err != nil {
			uc.l.Warnf(ctx, "analytics.usecase.AnalyzeVideo: publish %s failed: %v", out.ID, err)
		}
	}

	uc.l.Infof(ctx, "analytics.usecase.AnalyzeVideo: %s analyzed, comments=%d spam=%d avg_sentiment=%.2f",
		id, metrics.TotalComments, metrics.SpamComments, metrics.AverageSentiment)
	return out, nil
}
