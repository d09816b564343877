package catalog

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

// FilterAll disables a category, difficulty or price filter.
const FilterAll = "All"

// Experience levels
const (
	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperienceExpert       = "Expert"
)

// Budgets
const (
	BudgetFree   = "Free"
	BudgetLow    = "Low"
	BudgetMedium = "Medium"
	BudgetHigh   = "High"
)

// Difficulty levels of a course
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Result sizes
const (
	PopularLimit        = 6
	RecommendLimit      = 8
	BeginnerFallbackMax = 6
)

// Catalog - The static data set
type Catalog struct {
	Tools   []model.Tool   `yaml:"tools"`
	Courses []model.Course `yaml:"courses"`
}

// Goal - What the user wants a tool for
type Goal struct {
	Domain     string
	Goal       string
	Experience string
	Budget     string
}

// CourseQuery - Course search filters. Empty or "All" filters match everything.
type CourseQuery struct {
	Query      string
	Category   string
	Difficulty string
	Price      string
	Paginate   paginator.PaginateQuery
}

// CourseSearchOutput - One page of matching courses
type CourseSearchOutput struct {
	Courses   []model.Course
	Paginator paginator.Paginator
}
