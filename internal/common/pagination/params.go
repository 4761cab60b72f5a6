package pagination

import (
	"net/http"
	"strconv"
	"strings"
)

// Params is the normalized listing plan derived from raw query parameters.
type Params struct {
	Page  int // 1-based page number
	Limit int // items per page
	// Ascending is true only when the order parameter equals "asc"
	// case-insensitively; every other value means descending.
	Ascending bool
	// Title is the case-insensitive substring filter; empty means no filter.
	Title string
}

// ParseQueryParams normalizes pagination, ordering and title-filter inputs
// from the request query string. This function only normalizes, it never
// rejects: absent, non-numeric or non-positive page/limit values fall back to
// the configured defaults, and any order value other than "asc" sorts
// descending.
func ParseQueryParams(r *http.Request, config Config) Params {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			params.Page = page
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	params.Ascending = strings.EqualFold(r.URL.Query().Get("order"), "asc")
	params.Title = r.URL.Query().Get("title")

	return params
}

// Offset returns the database OFFSET value for the plan.
func (p Params) Offset() int {
	return CalculateOffset(p.Page, p.Limit)
}
