package http

import (
	"insight-srv/internal/catalog"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

// =====================================================
// Request DTOs
// =====================================================

type listToolsReq struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Pricing  string `form:"pricing" binding:"omitempty,oneof=Free Freemium Paid"`
}

type recommendToolsReq struct {
	Domain     string `json:"domain"`
	Goal       string `json:"goal"`
	Experience string `json:"experience" binding:"omitempty,oneof=Beginner Intermediate Expert"`
	Budget     string `json:"budget" binding:"omitempty,oneof=Free Low Medium High"`
}

func (r recommendToolsReq) toGoal() catalog.Goal {
	return catalog.Goal{
		Domain:     r.Domain,
		Goal:       r.Goal,
		Experience: r.Experience,
		Budget:     r.Budget,
	}
}

type searchCoursesReq struct {
	Query      string `form:"q"`
	Category   string `form:"category"`
	Difficulty string `form:"difficulty"`
	Price      string `form:"price"`
	paginator.PaginateQuery
}

func (r searchCoursesReq) toInput() catalog.CourseQuery {
	return catalog.CourseQuery{
		Query:      r.Query,
		Category:   r.Category,
		Difficulty: r.Difficulty,
		Price:      r.Price,
		Paginate:   r.PaginateQuery,
	}
}

type recommendCoursesReq struct {
	Interests []string `json:"interests"`
}

// =====================================================
// Response DTOs
// =====================================================

type toolsResp struct {
	Tools []model.Tool `json:"tools"`
	Total int          `json:"total"`
}

type coursesResp struct {
	Courses []model.Course `json:"courses"`
	Total   int            `json:"total"`
}

type searchCoursesResp struct {
	Courses   []model.Course              `json:"courses"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type categoriesResp struct {
	Categories []string `json:"categories"`
}

type courseFiltersResp struct {
	Categories   []string `json:"categories"`
	Difficulties []string `json:"difficulties"`
	Prices       []string `json:"prices"`
}

func newToolsResp(tools []model.Tool) toolsResp {
	return toolsResp{Tools: tools, Total: len(tools)}
}

func newCoursesResp(courses []model.Course) coursesResp {
	return coursesResp{Courses: courses, Total: len(courses)}
}

func (h *handler) newSearchCoursesResp(o catalog.CourseSearchOutput) searchCoursesResp {
	return searchCoursesResp{
		Courses:   o.Courses,
		Paginator: o.Paginator.ToResponse(),
	}
}
