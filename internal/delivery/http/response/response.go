// Package response defines the HTTP response envelope and pagination shape.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/errors"
)

// Response is the envelope returned by every endpoint.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code and optional details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// Success writes a success envelope with the given status and payload.
func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, Response{
		Success: true,
		Code:    status,
		Message: "OK",
		Data:    data,
	})
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes an error envelope. Application errors keep their status and
// code; anything else becomes a generic 500.
func Error(c echo.Context, err error) error {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		appErr = domainerrors.ErrInternalError
	}
	return c.JSON(appErr.HTTPCode(), Response{
		Success: false,
		Code:    appErr.HTTPCode(),
		Message: appErr.Message(),
		Error: &ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
		},
	})
}
