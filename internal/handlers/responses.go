package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"internal-tools-api/internal/errors"
	"internal-tools-api/internal/validation"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Invalid parameters: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.ToolNotFound)
//    - Conflicts: SendError(c, errors.ToolAlreadyExists)
//
// 2. SendValidationError - For validator.ValidationErrors from c.Validate
//
// 3. SendDatabaseError / SendSystemError - For store and internal errors (500 responses)
//    The internal error is logged, never returned to the client.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError renders validator errors as VALIDATION_001 with one
// detail per field. Any other error is treated as a malformed request.
func SendValidationError(c echo.Context, err error) error {
	fieldErrors := validation.FormatErrors(err)
	if fieldErrors == nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return c.JSON(http.StatusBadRequest, errors.NewValidationError(fieldErrors, getTraceID(c)))
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	logInternalError(c, traceID, internalErr)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDatabaseError is SendSystemError for failures reading or writing the store
func SendDatabaseError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapDatabaseError(err, traceID)
	logInternalError(c, traceID, internalErr)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

func logInternalError(c echo.Context, traceID string, err error) {
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"method", c.Request().Method,
		"error", fmt.Sprint(err),
	)
}
