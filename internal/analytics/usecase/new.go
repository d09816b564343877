package usecase

import (
	"time"

	"insight-srv/internal/analytics"
	"insight-srv/internal/classifier"
	"insight-srv/internal/engagement"
	"insight-srv/internal/video"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	l            log.Logger
	videoUC      video.UseCase
	classifierUC classifier.UseCase
	metricsUC    engagement.UseCase
	publisher    analytics.Publisher
	cfg          analytics.Config
	clock        func() time.Time
}

// Option customizes the usecase.
type Option func(*implUseCase)

// WithPublisher announces every finished analysis through p.
func WithPublisher(p analytics.Publisher) Option {
	return func(uc *implUseCase) { uc.publisher = p }
}

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(uc *implUseCase) { uc.clock = clock }
}

// New - Factory function
func New(
	l log.Logger,
	videoUC video.UseCase,
	classifierUC classifier.UseCase,
	metricsUC engagement.UseCase,
	cfg analytics.Config,
	opts ...Option,
) analytics.UseCase {
	if cfg.MaxComments <= 0 {
		cfg.MaxComments = analytics.DefaultMaxComments
	}
	uc := &implUseCase{
		l:            l,
		videoUC:      videoUC,
		classifierUC: classifierUC,
		metricsUC:    metricsUC,
		cfg:          cfg,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
