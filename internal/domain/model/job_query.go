//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// JobAdminListOptions groups parameters for the admin job listing.
// Notes:
// - Status: "all" (or empty) matches every status, otherwise exact match.
// - Search matches trade, job_description, or postcode via ILIKE substring.
type JobAdminListOptions struct {
	Page   int    // 1-based page number (default 1)
	Limit  int    // page size (default 10)
	Status string // "all", "pending", "approved", "rejected"
	Search string // substring match across trade/job_description/postcode
}

// OpenJobsListOptions groups parameters for the tradesperson-facing job
// listing. The open-for-application base predicate is always applied on top
// of these filters.
type OpenJobsListOptions struct {
	Page     int    // 1-based page number (default 1)
	Limit    int    // page size (default 10)
	Trade    string // trade filter with synonym expansion
	Location string // postcode prefix filter (case-insensitive)
	// TradespersonID, when set, excludes jobs this tradesperson already
	// applied to.
	TradespersonID string
}

// Normalize clamps pagination values to their documented defaults.
func (o *JobAdminListOptions) Normalize() {
	o.Page, o.Limit = normalizePage(o.Page, o.Limit)
}

// Normalize clamps pagination values to their documented defaults.
func (o *OpenJobsListOptions) Normalize() {
	o.Page, o.Limit = normalizePage(o.Page, o.Limit)
}

const (
	defaultPage  = 1
	defaultLimit = 10
)

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// Offset converts the page/limit pair into a row offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
