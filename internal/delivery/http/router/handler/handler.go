// Package handler implements the HTTP endpoint handlers.
package handler

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"clinic/config"
	"clinic/internal/delivery/http/middleware"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/usecase"
)

// getUserID returns the authenticated user's ID from the request context.
func getUserID(c echo.Context) (uuid.UUID, error) {
	raw, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidCredentials
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidCredentials
	}
	return id, nil
}

// parseIDParam parses the :id path parameter as a UUID. Malformed IDs map
// to not-found, matching lookup semantics.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound
	}
	return id, nil
}

// parseListInput reads the common list query parameters.
func parseListInput(c echo.Context) usecase.ListInput {
	input := usecase.ListInput{
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		input.Page = page
	}
	if pageSize, err := strconv.Atoi(c.QueryParam("page_size")); err == nil {
		input.PageSize = pageSize
	}
	return input
}

// clampListInput applies the configured page bounds so handlers and use
// cases agree on the effective page window when building page links.
func clampListInput(input usecase.ListInput, cfg config.PaginationConfig) usecase.ListInput {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.PageSize <= 0 {
		input.PageSize = cfg.DefaultPageSize
	}
	if cfg.MaxPageSize > 0 && input.PageSize > cfg.MaxPageSize {
		input.PageSize = cfg.MaxPageSize
	}
	return input
}

// bindAndValidate binds the request body and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			"body": "malformed request body",
		})
	}
	return c.Validate(req)
}
