// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/router/handler"
	"clinic/internal/domain/entity"
)

// Handlers bundles the endpoint handlers for route registration.
type Handlers struct {
	User      *handler.UserHandler
	Location  *handler.LocationHandler
	Patient   *handler.PatientHandler
	HeartRate *handler.HeartRateHandler
	Health    *handler.HealthHandler
}

// Register mounts all routes on the echo instance. Everything under /api
// except registration, login, and the token endpoints requires a bearer
// token; listing users additionally requires the admin role.
func Register(e *echo.Echo, h Handlers, auth *middleware.AuthMiddleware) {
	e.GET("/health", h.Health.Check)

	api := e.Group("/api")
	users := api.Group("/users")

	account := users.Group("/auth")
	account.POST("/register", h.User.Register)
	account.POST("/login", h.User.Login)
	account.POST("/refresh", h.User.Refresh)
	account.POST("/logout", h.User.Logout, auth.Authenticate)
	account.GET("/me", h.User.Me, auth.Authenticate)
	account.GET("/list-users", h.User.List, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	account.GET("/:id", h.User.Get, auth.Authenticate)
	account.PUT("/:id", h.User.Update, auth.Authenticate)
	account.PATCH("/:id", h.User.Patch, auth.Authenticate)
	account.DELETE("/:id", h.User.Delete, auth.Authenticate)

	locations := users.Group("/locations", auth.Authenticate)
	locations.POST("", h.Location.Create)
	locations.GET("", h.Location.List)
	locations.GET("/:id", h.Location.Get)
	locations.PUT("/:id", h.Location.Update)
	locations.PATCH("/:id", h.Location.Patch)
	locations.DELETE("/:id", h.Location.Delete)

	patients := api.Group("/patients", auth.Authenticate)
	patients.POST("", h.Patient.Create)
	patients.GET("", h.Patient.List)
	patients.GET("/:id", h.Patient.Get)
	patients.PUT("/:id", h.Patient.Update)
	patients.PATCH("/:id", h.Patient.Patch)
	patients.DELETE("/:id", h.Patient.Delete)

	heartRates := api.Group("/vitals/heart-rates", auth.Authenticate)
	heartRates.POST("", h.HeartRate.Create)
	heartRates.GET("", h.HeartRate.List)
	heartRates.GET("/:id", h.HeartRate.Get)
	heartRates.PUT("/:id", h.HeartRate.Update)
	heartRates.PATCH("/:id", h.HeartRate.Patch)
	heartRates.DELETE("/:id", h.HeartRate.Delete)
}
