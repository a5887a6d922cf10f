//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Pagination is the metadata envelope returned alongside every listing.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// NewPagination derives the pagination envelope from the page, limit, and the
// total row count of the identical filter predicate.
// TotalPages is ceil(total/limit); HasMore is page < totalPages.
func NewPagination(page, limit, total int) Pagination {
	if limit < 1 {
		limit = defaultLimit
	}
	totalPages := (total + limit - 1) / limit
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}
