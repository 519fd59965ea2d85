// Package impl implements the application use cases.
package impl

import (
	"clinic/config"
	"clinic/internal/domain/repository"
	"clinic/internal/usecase"
)

// toListQuery converts a list input to a repository query, clamping the page
// and page size to the configured bounds.
func toListQuery(input usecase.ListInput, cfg config.PaginationConfig) repository.ListQuery {
	page := input.Page
	if page < 1 {
		page = 1
	}

	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = cfg.DefaultPageSize
	}
	if cfg.MaxPageSize > 0 && pageSize > cfg.MaxPageSize {
		pageSize = cfg.MaxPageSize
	}

	return repository.ListQuery{
		Search:   input.Search,
		Ordering: input.Ordering,
		Page:     page,
		PageSize: pageSize,
	}
}
