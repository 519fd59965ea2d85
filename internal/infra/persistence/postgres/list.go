package postgres

import (
	"strings"

	"gorm.io/gorm"

	"clinic/internal/domain/repository"
)

// applyOrdering applies the query's ordering expression if the field is in
// the allow-list. A leading '-' requests descending order. Unknown fields
// fall back to the default order.
func applyOrdering(tx *gorm.DB, ordering string, allowed map[string]string, defaultOrder string) *gorm.DB {
	return tx.Order(resolveOrdering(ordering, allowed, defaultOrder))
}

// resolveOrdering maps an ordering request to an ORDER BY clause.
func resolveOrdering(ordering string, allowed map[string]string, defaultOrder string) string {
	field := strings.TrimSpace(ordering)
	desc := strings.HasPrefix(field, "-")
	field = strings.TrimPrefix(field, "-")

	column, ok := allowed[field]
	if !ok {
		return defaultOrder
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

// applyPagination applies the query's page window.
func applyPagination(tx *gorm.DB, query repository.ListQuery) *gorm.DB {
	if query.PageSize <= 0 {
		return tx
	}
	return tx.Offset(query.Offset()).Limit(query.PageSize)
}

// likePattern builds a case-insensitive substring pattern for ILIKE.
func likePattern(term string) string {
	return "%" + term + "%"
}
