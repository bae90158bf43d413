package query

import "strconv"

const (
	// DefaultPage is used when the page parameter is absent or invalid.
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is absent or invalid.
	DefaultLimit = 10
)

// Pagination carries the requested page window.
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination reads page/limit query values, falling back to defaults for
// missing, unparseable, or non-positive input.
func ParsePagination(page, limit string) Pagination {
	p := Pagination{Page: DefaultPage, Limit: DefaultLimit}
	if v, err := strconv.Atoi(page); err == nil && v >= 1 {
		p.Page = v
	}
	if v, err := strconv.Atoi(limit); err == nil && v >= 1 {
		p.Limit = v
	}
	return p
}

// Offset returns the row offset for the window.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo is the pagination envelope returned alongside list results.
type PageInfo struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPageInfo computes the envelope for a total row count under p.
func NewPageInfo(p Pagination, total int64) PageInfo {
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return PageInfo{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: pages,
	}
}
