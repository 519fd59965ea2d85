package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	reqctx "clinic/internal/delivery/context"
	"clinic/internal/delivery/http/response"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/errors"
)

// ErrorHandler translates returned errors into the response envelope. It
// runs outermost so every error from the chain passes through it.
func ErrorHandler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}
			if c.Response().Committed {
				return err
			}

			logger := reqctx.GetLoggerOrDefault(c.Request().Context())

			if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
				if appErr.HTTPCode() >= http.StatusInternalServerError {
					logger.Error("request error", slog.Any("error", err))
				}
				return response.Error(c, appErr)
			}

			if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
				return response.Error(c, domainerrors.NewBaseError(
					httpErr.Code,
					http.StatusText(httpErr.Code),
					messageOf(httpErr),
					nil,
				))
			}

			logger.Error("unhandled error", slog.Any("error", err))
			return response.Error(c, domainerrors.ErrInternalError)
		}
	}
}

func messageOf(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}
	return http.StatusText(httpErr.Code)
}
