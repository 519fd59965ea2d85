// Package http builds and runs the echo HTTP server.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"clinic/config"
	"clinic/internal/delivery"
	"clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/router"
	"clinic/internal/delivery/http/validator"
	"clinic/internal/errors"
)

// Server is the HTTP delivery component.
type Server struct {
	echo   *echo.Echo
	port   int
	logger *slog.Logger
}

// NewServer assembles the echo instance with the full middleware chain and
// all routes registered.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	handlers router.Handlers,
	auth *middleware.AuthMiddleware,
) delivery.Delivery {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()

	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID(logger))
	e.Use(middleware.RequestLogger())
	e.Use(middleware.ErrorHandler())

	router.Register(e, handlers, auth)

	return &Server{
		echo:   e,
		port:   cfg.HTTP.Port,
		logger: logger,
	}
}

// Serve starts the listener and blocks until the server stops.
func (s *Server) Serve(_ context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("http server starting", slog.String("addr", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server failed")
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	if err := s.echo.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "http server shutdown")
	}
	return nil
}
