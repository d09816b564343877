package usecase

import (
	"cmp"
	"slices"
	"strings"

	"insight-srv/internal/catalog"
	"insight-srv/internal/model"
)

// filter returns the matching items in catalog order, always as a new slice.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// byRating sorts highest rated first, keeping catalog order among equal ratings.
func byRating[T any](items []T, rating func(T) float64) []T {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(rating(b), rating(a))
	})
	return items
}

func top[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func toolRating(t model.Tool) float64     { return t.Rating }
func courseRating(c model.Course) float64 { return c.Rating }

func anyContains(items []string, sub string) bool {
	return slices.ContainsFunc(items, func(s string) bool {
		return strings.Contains(strings.ToLower(s), sub)
	})
}

// matchesFilter treats an empty value and "All" as no filter.
func matchesFilter(filterValue, value string) bool {
	return filterValue == "" || filterValue == catalog.FilterAll || filterValue == value
}

// distinct returns the unique values in first-seen order.
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
