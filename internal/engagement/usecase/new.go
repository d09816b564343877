package usecase

import "insight-srv/internal/engagement"

type implUseCase struct{}

// New - Factory function
func New() engagement.UseCase {
	return &implUseCase{}
}
