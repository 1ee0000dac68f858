package domain

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// PageRequest carries the page/limit query values from the handler down to the
// trip repo. Page is 1-based.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest normalizes optional query values. Missing or non-positive
// values fall back to page 1 and a limit of 20; the limit never exceeds 100.
func NewPageRequest(page, limit *int) PageRequest {
	p := PageRequest{Page: 1, Limit: defaultPageLimit}
	if page != nil && *page > 0 {
		p.Page = *page
	}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, maxPageLimit)
	}
	return p
}

// Offset is the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns how many pages of this size hold total rows.
func (p PageRequest) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
