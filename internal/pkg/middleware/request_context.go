package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type requestIDKey struct{}

// RequestIDMiddleware propagates or generates an X-Request-ID for every request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Set("request_id", requestID)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			ctx := context.WithValue(c.Request().Context(), requestIDKey{}, requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequestIDFromContext returns the request id stored by RequestIDMiddleware
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
