package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Bhargav-sunil/TaskManagement/internal/errors"
)

// ok writes a success envelope with optional message and data.
func ok(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, apperrors.Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// failMessage writes a failure envelope with an explicit status and message.
func failMessage(c echo.Context, status int, message string, errs []string) error {
	return c.JSON(status, apperrors.Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// fail translates a service error into the failure envelope. Validation
// violations are returned as a list; unclassified errors are logged and
// surface as a generic internal error, never verbatim.
func fail(c echo.Context, err error) error {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return failMessage(c, http.StatusBadRequest, "Validation failed", ve.Errors)
	}

	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
		return failMessage(c, status, "Internal server error", nil)
	}
	return failMessage(c, status, err.Error(), nil)
}
