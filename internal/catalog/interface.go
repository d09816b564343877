package catalog

import "insight-srv/internal/model"

// UseCase searches and recommends from the static tool and course catalogs.
// Results are sorted copies; the catalog itself never changes.
//
//go:generate mockery --name UseCase
type UseCase interface {
	SearchTools(query string) []model.Tool
	ToolsByCategory(category string) []model.Tool
	ToolsByPricing(pricing string) []model.Tool
	ToolCategories() []string
	PopularTools() []model.Tool
	RecommendTools(goal Goal) []model.Tool

	SearchCourses(q CourseQuery) CourseSearchOutput
	PopularCourses() []model.Course
	FreeCourses() []model.Course
	CertifiedCourses() []model.Course
	RecommendCourses(interests []string) []model.Course
	CourseCategories() []string
	DifficultyLevels() []string
	PriceFilters() []string
}
