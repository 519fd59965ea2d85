// Package middleware provides the echo middleware chain: request IDs,
// request logging, error translation, and JWT authentication.
package middleware

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	reqctx "clinic/internal/delivery/context"
)

// HeaderRequestID is the request ID header echoed back to clients.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns each request an ID, reusing the client's when present,
// and attaches a request-scoped logger to the context.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(HeaderRequestID, requestID)

			ctx := c.Request().Context()
			ctx = reqctx.WithRequestID(ctx, requestID)
			ctx = reqctx.WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
