package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	reqctx "clinic/internal/delivery/context"
)

// RequestLogger logs one line per request with method, path, status, and
// latency, using the request-scoped logger.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			logger := reqctx.GetLoggerOrDefault(c.Request().Context())
			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", c.Response().Status),
				slog.Duration("latency", time.Since(start)),
				slog.String("remote_ip", c.RealIP()),
			}

			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
				logger.Error("request failed", attrs...)
			} else {
				logger.Info("request completed", attrs...)
			}

			return err
		}
	}
}
