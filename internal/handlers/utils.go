package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	apierrors "internal-tools-api/internal/errors"
	"internal-tools-api/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// errInvalidID is returned when a path id is not a positive integer
var errInvalidID = errors.New("invalid id")

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// decimalQuery binds a decimal query parameter into dest, leaving it nil when absent
func decimalQuery(name string, dest **decimal.Decimal) func(values []string) []error {
	return func(values []string) []error {
		d, err := decimal.NewFromString(strings.TrimSpace(values[0]))
		if err != nil {
			return []error{echo.NewBindingError(name, values, "failed to bind field value to decimal", err)}
		}
		*dest = &d
		return nil
	}
}

// int64Query binds an integer query parameter into dest, leaving it nil when absent
func int64Query(name string, dest **int64) func(values []string) []error {
	return func(values []string) []error {
		n, err := strconv.ParseInt(strings.TrimSpace(values[0]), 10, 64)
		if err != nil {
			return []error{echo.NewBindingError(name, values, "failed to bind field value to int64", err)}
		}
		*dest = &n
		return nil
	}
}

// bindingErrorDetail names the offending query parameter of a binder error
func bindingErrorDetail(err error) string {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return fmt.Sprintf("%s: must be a valid number", bindingErr.Field)
	}
	return "invalid query parameters"
}

// invalidParameterDetail strips the sentinel prefix from a service parameter error
func invalidParameterDetail(err error) string {
	return strings.TrimPrefix(err.Error(), services.ErrInvalidParameter.Error()+": ")
}

// handleServiceError maps service sentinels to API error codes. Anything
// unrecognized is a store failure.
func handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidParameter):
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(invalidParameterDetail(err)))
	case errors.Is(err, services.ErrToolNotFound):
		return SendError(c, apierrors.ToolNotFound)
	case errors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, apierrors.CategoryNotFound)
	case errors.Is(err, services.ErrToolNameTaken):
		return SendError(c, apierrors.ToolAlreadyExists)
	default:
		return SendDatabaseError(c, err)
	}
}
