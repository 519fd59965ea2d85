package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"clinic/config"
	"clinic/internal/delivery/http/response"
	"clinic/internal/domain/entity"
	"clinic/internal/usecase"
)

// LocationHandler serves the care location CRUD endpoints.
type LocationHandler struct {
	locationUsecase usecase.LocationUsecase
	pagination      config.PaginationConfig
}

// NewLocationHandler creates the location handler.
func NewLocationHandler(locationUsecase usecase.LocationUsecase, cfg *config.Config) *LocationHandler {
	return &LocationHandler{
		locationUsecase: locationUsecase,
		pagination:      cfg.Pagination,
	}
}

type locationRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=255"`
	AddressLine *string `json:"address_line" validate:"omitempty,max=255"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
	ZipCode     *string `json:"zip_code" validate:"omitempty,max=20"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
}

type patchLocationRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=255"`
	AddressLine *string `json:"address_line" validate:"omitempty,max=255"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
	ZipCode     *string `json:"zip_code" validate:"omitempty,max=20"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
}

type locationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AddressLine *string   `json:"address_line"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	ZipCode     *string   `json:"zip_code"`
	Country     *string   `json:"country"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toLocationResponse(location *entity.Location) locationResponse {
	return locationResponse{
		ID:          location.ID.String(),
		Name:        location.Name,
		AddressLine: location.AddressLine,
		City:        location.City,
		State:       location.State,
		ZipCode:     location.ZipCode,
		Country:     location.Country,
		CreatedAt:   location.CreatedAt,
		UpdatedAt:   location.UpdatedAt,
	}
}

func (req *locationRequest) toInput() usecase.LocationInput {
	return usecase.LocationInput{
		Name:        req.Name,
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Country:     req.Country,
	}
}

// Create handles POST /api/users/locations.
func (h *LocationHandler) Create(c echo.Context) error {
	var req locationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	location, err := h.locationUsecase.CreateLocation(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusCreated, toLocationResponse(location))
}

// Get handles GET /api/users/locations/:id.
func (h *LocationHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	location, err := h.locationUsecase.GetLocation(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toLocationResponse(location))
}

// List handles GET /api/users/locations.
func (h *LocationHandler) List(c echo.Context) error {
	input := clampListInput(parseListInput(c), h.pagination)

	locations, total, err := h.locationUsecase.ListLocations(c.Request().Context(), input)
	if err != nil {
		return err
	}

	results := make([]locationResponse, 0, len(locations))
	for _, location := range locations {
		results = append(results, toLocationResponse(location))
	}

	page := response.NewPage(c, total, input.Page, input.PageSize, results)
	return response.Success(c, http.StatusOK, page)
}

// Update handles PUT /api/users/locations/:id.
func (h *LocationHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req locationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	location, err := h.locationUsecase.UpdateLocation(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toLocationResponse(location))
}

// Patch handles PATCH /api/users/locations/:id. Absent fields keep their
// values.
func (h *LocationHandler) Patch(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req patchLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	location, err := h.locationUsecase.PartialUpdateLocation(c.Request().Context(), id, usecase.LocationPatch{
		Name:        req.Name,
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Country:     req.Country,
	})
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toLocationResponse(location))
}

// Delete handles DELETE /api/users/locations/:id.
func (h *LocationHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.locationUsecase.DeleteLocation(c.Request().Context(), id); err != nil {
		return err
	}
	return response.NoContent(c)
}
