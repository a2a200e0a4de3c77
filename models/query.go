package models

import "math"

const (
	DefaultPage         = 1
	DefaultLimit        = 20
	FeaturedProjectsMax = 6
)

// ProjectQuery describes one window over the filtered project listing.
// Nil and empty fields impose no constraint.
type ProjectQuery struct {
	Category   string
	Technology string
	Featured   *bool
	Status     string
	Search     string
	Page       int
	Limit      int
}

// Skip is the number of matching records before the requested page. It
// saturates instead of overflowing.
func (q ProjectQuery) Skip() int64 {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	pages, limit := int64(q.Page-1), int64(q.Limit)
	if pages > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return pages * limit
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination derives the page count as ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

type ProjectPage struct {
	Projects   []Project
	Pagination Pagination
}
