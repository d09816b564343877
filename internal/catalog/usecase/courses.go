package usecase

import (
	"slices"
	"strings"

	"insight-srv/internal/catalog"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
	"insight-srv/pkg/util"
)

// SearchCourses filters by category, difficulty and price, then matches the query against
// title, description, provider and tags, and returns the requested page.
func (uc *implUseCase) SearchCourses(q catalog.CourseQuery) catalog.CourseSearchOutput {
	term := strings.ToLower(strings.TrimSpace(q.Query))

	matched := filter(uc.cat.Courses, func(c model.Course) bool {
		if !matchesFilter(q.Category, c.Category) ||
			!matchesFilter(q.Difficulty, c.Difficulty) ||
			!matchesFilter(q.Price, c.Price) {
			return false
		}
		if term == "" {
			return true
		}
		return strings.Contains(strings.ToLower(c.Title), term) ||
			strings.Contains(strings.ToLower(c.Description), term) ||
			strings.Contains(strings.ToLower(c.Provider), term) ||
			anyContains(c.Tags, term)
	})

	page, p := paginator.Slice(matched, q.Paginate)
	return catalog.CourseSearchOutput{
		Courses:   page,
		Paginator: p,
	}
}

func (uc *implUseCase) PopularCourses() []model.Course {
	return top(byRating(slices.Clone(uc.cat.Courses), courseRating), catalog.PopularLimit)
}

func (uc *implUseCase) FreeCourses() []model.Course {
	free := filter(uc.cat.Courses, func(c model.Course) bool { return c.Price == model.PricingFree })
	return byRating(free, courseRating)
}

func (uc *implUseCase) CertifiedCourses() []model.Course {
	certified := filter(uc.cat.Courses, func(c model.Course) bool { return c.HasCertificate })
	return byRating(certified, courseRating)
}

// RecommendCourses matches any interest against tags, category and title.
// Without interests it returns the popular courses.
func (uc *implUseCase) RecommendCourses(interests []string) []model.Course {
	terms := util.NormalizeTerms(interests)
	if len(terms) == 0 {
		return uc.PopularCourses()
	}

	recs := filter(uc.cat.Courses, func(c model.Course) bool {
		return slices.ContainsFunc(terms, func(term string) bool {
			return anyContains(c.Tags, term) ||
				strings.Contains(strings.ToLower(c.Category), term) ||
				strings.Contains(strings.ToLower(c.Title), term)
		})
	})
	return top(byRating(recs, courseRating), catalog.RecommendLimit)
}

// CourseCategories returns "All" followed by the sorted categories.
func (uc *implUseCase) CourseCategories() []string {
	cats := distinct(util.MapSlice(uc.cat.Courses, func(c model.Course) string { return c.Category }))
	slices.Sort(cats)
	return append([]string{catalog.FilterAll}, cats...)
}

func (uc *implUseCase) DifficultyLevels() []string {
	return []string{catalog.FilterAll, catalog.DifficultyBeginner, catalog.DifficultyIntermediate, catalog.DifficultyAdvanced}
}

func (uc *implUseCase) PriceFilters() []string {
	return []string{catalog.FilterAll, model.PricingFree, model.PricingPaid, model.PricingFreemium}
}
