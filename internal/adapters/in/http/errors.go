package http

import (
	"context"
	"errors"
	"net/http"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, order.ErrInvalidOrder),
		errors.Is(err, commands.ErrWeightIsInvalid),
		errors.Is(err, commands.ErrCoordinateIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrNoPendingOrders):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error, message string) error {
	code := statusFor(err)
	if code != http.StatusInternalServerError {
		message += ": " + err.Error()
	}
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

func invalidID(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid id: " + ctx.Param("id"),
	})
}
