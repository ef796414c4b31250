package api

import (
	"context"

	"github.com/ecakir/cart-dashboard/internal/pkg/constants"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns every request an id, reusing the client's when
// supplied, and threads it through the request context for log correlation.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Request().Header.Get(constants.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		reqCtx := context.WithValue(ctx.Request().Context(), constants.CtxKeyRequestID, id)
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))
		ctx.Response().Header().Set(constants.HeaderRequestID, id)

		return next(ctx)
	}
}
