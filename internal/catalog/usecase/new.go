package usecase

import (
	"insight-srv/internal/catalog"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	l   log.Logger
	cat catalog.Catalog
}

// New - Factory function
func New(l log.Logger, cat catalog.Catalog) catalog.UseCase {
	return &implUseCase{
		l:   l,
		cat: cat,
	}
}
