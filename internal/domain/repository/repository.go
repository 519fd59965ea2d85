// Package repository defines persistence interfaces for the domain layer.
package repository

// ListQuery carries the common list parameters shared by all collection
// endpoints: a free-text search term, an ordering expression, and page-based
// pagination. A leading '-' on Ordering requests descending order. Fields not
// in a repository's ordering allow-list are ignored.
type ListQuery struct {
	Search   string
	Ordering string
	Page     int
	PageSize int
}

// Offset returns the row offset for the query's page.
func (q ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}
