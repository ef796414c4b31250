package api

import (
	"errors"
	"net/http"

	"github.com/ecakir/cart-dashboard/internal/domain"
	"github.com/ecakir/cart-dashboard/internal/pkg/constants"
	"github.com/ecakir/cart-dashboard/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// httpErrorHandler converts errors into the response envelope. Coded errors
// keep their status and message; anything else is logged with full detail
// and surfaced as a generic failure so engine internals never leak out.
func httpErrorHandler(err error, c echo.Context) {
	msg := "internal server error"
	code := http.StatusInternalServerError

	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		if ce, ok := unwrapped.(*constants.CodedError); ok {
			code = ce.Code()
			msg = ce.Error()
			break
		}
		if he, ok := unwrapped.(*echo.HTTPError); ok {
			code = he.Code
			msg = http.StatusText(he.Code)
			break
		}
	}

	logger.Errorf(c.Request().Context(), "%s %s failed: %s", c.Request().Method, c.Path(), err.Error())

	_ = c.JSON(code, domain.ErrorResponse[struct{}](msg))
}
