package usecase

import (
	"context"
	"fmt"

	"insight-srv/internal/comparison"
	"insight-srv/internal/model"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) Compare(ctx context.Context, input comparison.CompareInput) (comparison.ComparisonResult, error) {
	// 1. Resolve both ids before touching the provider
	id1, err := uc.videoUC.ResolveVideoID(input.URL1)
	if err != nil {
		return comparison.ComparisonResult{}, fmt.Errorf("%w: %w", comparison.ErrInvalidURL, err)
	}
	id2, err := uc.videoUC.ResolveVideoID(input.URL2)
	if err != nil {
		return comparison.ComparisonResult{}, fmt.Errorf("%w: %w", comparison.ErrInvalidURL, err)
	}

	// 2. Fetch both concurrently, the first failure cancels the other
	var stats1, stats2 model.VideoStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := uc.videoUC.GetStatistics(gctx, id1)
		if err != nil {
			return err
		}
		stats1 = s
		return nil
	})
	g.Go(func() error {
		s, err := uc.videoUC.GetStatistics(gctx, id2)
		if err != nil {
			return err
		}
		stats2 = s
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "comparison.usecase.Compare: fetching statistics failed: %v", err)
		return comparison.ComparisonResult{}, fmt.Errorf("%w: %w", comparison.ErrDataUnavailable, err)
	}

	// 3. Score
	now := uc.clock()
	item1 := uc.buildItem(stats1, now)
	item2 := uc.buildItem(stats2, now)

	result := comparison.ComparisonResult{
		ID:         uuid.NewString(),
		Item1:      item1,
		Item2:      item2,
		Verdict:    comparison.Decide(item1, item2),
		ComparedAt: now,
	}

	// 4. Announce
	if uc.publisher != nil {
		if err := uc.publisher.PublishCompleted(ctx, result); err != nil {
			uc.l.Warnf(ctx, "comparison.usecase.Compare: publish %s failed: %v", result.ID, err)
		}
	}

	uc.l.Infof(ctx, "comparison.usecase.Compare: %s vs %s -> %s (%.2f / %.2f)",
		id1, id2, result.Verdict.Winner, item1.Score.Composite, item2.Score.Composite)
	return result, nil
}
