package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"clinic/internal/delivery/http/response"
	domainerrors "clinic/internal/domain/errors"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /health. It reports healthy only when the database
// answers a ping.
func (h *HealthHandler) Check(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "health check")
	}
	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "health check ping")
	}
	return response.Success(c, http.StatusOK, map[string]string{"status": "healthy"})
}
