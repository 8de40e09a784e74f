package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"goatgrids/internal/repository"
	"goatgrids/internal/service"
)

// httpError translates service and repository errors into the API's error
// taxonomy. notFoundMsg names the missing entity for 404 responses.
func httpError(err error, notFoundMsg string) error {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		return echo.NewHTTPError(http.StatusBadRequest, validation.Error())
	case errors.Is(err, repository.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrNotOwner):
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized")
	case errors.Is(err, service.ErrAlreadyPaid):
		return echo.NewHTTPError(http.StatusBadRequest, "Order already paid")
	case errors.Is(err, service.ErrInvalidStatus):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
	case errors.Is(err, service.ErrPaymentNotConfigured):
		return echo.NewHTTPError(http.StatusInternalServerError, "Payment gateway not configured")
	case errors.Is(err, service.ErrCourierNotConfigured):
		return echo.NewHTTPError(http.StatusInternalServerError, "Courier service not configured")
	}
	return err
}
