package http

import (
	"time"

	"github.com/labstack/echo/v4"
)

// RequestObserver receives one observation per served request.
type RequestObserver interface {
	ObserveHTTPRequest(route, method string, status int, elapsed time.Duration)
}

// MetricsMiddleware reports every request to obs, labelled by route template.
func MetricsMiddleware(obs RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			if err := next(ctx); err != nil {
				ctx.Error(err)
			}

			obs.ObserveHTTPRequest(ctx.Path(), ctx.Request().Method, ctx.Response().Status, time.Since(start))
			return nil
		}
	}
}
