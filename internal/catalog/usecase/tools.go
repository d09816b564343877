package usecase

import (
	"context"
	"slices"
	"strings"

	"insight-srv/internal/catalog"
	"insight-srv/internal/model"
	"insight-srv/pkg/util"
)

// SearchTools matches name, description, tags and use cases. An empty query returns every tool.
func (uc *implUseCase) SearchTools(query string) []model.Tool {
	q := strings.ToLower(strings.TrimSpace(query))
	return filter(uc.cat.Tools, func(t model.Tool) bool {
		return strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Description), q) ||
			anyContains(t.Tags, q) ||
			anyContains(t.UseCases, q)
	})
}

func (uc *implUseCase) ToolsByCategory(category string) []model.Tool {
	if category == "" || category == catalog.FilterAll {
		return slices.Clone(uc.cat.Tools)
	}
	return filter(uc.cat.Tools, func(t model.Tool) bool { return t.Category == category })
}

func (uc *implUseCase) ToolsByPricing(pricing string) []model.Tool {
	return filter(uc.cat.Tools, func(t model.Tool) bool { return t.Pricing == pricing })
}

func (uc *implUseCase) ToolCategories() []string {
	return distinct(util.MapSlice(uc.cat.Tools, func(t model.Tool) string { return t.Category }))
}

func (uc *implUseCase) PopularTools() []model.Tool {
	return top(byRating(slices.Clone(uc.cat.Tools), toolRating), catalog.PopularLimit)
}

// RecommendTools matches the goal's domain against category, subcategory and tags and its goal
// against use cases and description. Without any match it falls back on the experience level.
func (uc *implUseCase) RecommendTools(goal catalog.Goal) []model.Tool {
	domain := strings.ToLower(strings.TrimSpace(goal.Domain))
	want := strings.ToLower(strings.TrimSpace(goal.Goal))

	affordable := func(t model.Tool) bool {
		return goal.Budget != catalog.BudgetFree || t.Pricing != model.PricingPaid
	}

	recs := filter(uc.cat.Tools, func(t model.Tool) bool {
		if !affordable(t) {
			return false
		}
		return matchesDomain(t, domain) || matchesGoal(t, want)
	})

	if len(recs) == 0 {
		uc.l.Debugf(context.Background(), "catalog.usecase.RecommendTools: no match for domain=%q goal=%q, falling back", goal.Domain, goal.Goal)
		recs = uc.fallbackTools(goal.Experience, affordable)
	}

	return top(byRating(recs, toolRating), catalog.RecommendLimit)
}

func (uc *implUseCase) fallbackTools(experience string, affordable func(model.Tool) bool) []model.Tool {
	if experience == catalog.ExperienceBeginner {
		free := filter(uc.cat.Tools, func(t model.Tool) bool {
			return t.Pricing == model.PricingFree || t.Pricing == model.PricingFreemium
		})
		return top(free, catalog.BeginnerFallbackMax)
	}
	return top(filter(uc.cat.Tools, affordable), catalog.RecommendLimit)
}

func matchesDomain(t model.Tool, domain string) bool {
	if domain == "" {
		return false
	}
	return strings.Contains(strings.ToLower(t.Category), domain) ||
		strings.Contains(strings.ToLower(t.Subcategory), domain) ||
		anyContains(t.Tags, domain)
}

func matchesGoal(t model.Tool, goal string) bool {
	if goal == "" {
		return false
	}
	for _, u := range t.UseCases {
		lu := strings.ToLower(u)
		if strings.Contains(lu, goal) || strings.Contains(goal, lu) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(t.Description), goal)
}
