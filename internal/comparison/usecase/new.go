package usecase

import (
	"time"

	"insight-srv/internal/comparison"
	"insight-srv/internal/engagement"
	"insight-srv/internal/video"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	videoUC   video.UseCase
	metricsUC engagement.UseCase
	publisher comparison.Publisher
	clock     func() time.Time
}

// Option customizes the usecase.
type Option func(*implUseCase)

// WithPublisher announces every finished comparison through p.
func WithPublisher(p comparison.Publisher) Option {
	return func(uc *implUseCase) { uc.publisher = p }
}

// WithClock replaces time.Now, used by the publication age checks.
func WithClock(clock func() time.Time) Option {
	return func(uc *implUseCase) { uc.clock = clock }
}

// New - Factory function
func New(l log.Logger, videoUC video.UseCase, metricsUC engagement.UseCase, opts ...Option) comparison.UseCase {
	uc := &implUseCase{
		l:         l,
		videoUC:   videoUC,
		metricsUC: metricsUC,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
