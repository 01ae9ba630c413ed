package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs every request handled by echo
func ZapEchoMiddleware(l *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			userID := "anonymous"
			if uid := c.Get("user_id"); uid != nil {
				userID = fmt.Sprintf("%v", uid)
			}

			l.LogHTTPRequest(
				c.Request().Method,
				c.Request().URL.Path,
				c.RealIP(),
				userID,
				c.Response().Header().Get(echo.HeaderXRequestID),
				c.Response().Status,
				time.Since(start),
				err,
			)
			return nil
		}
	}
}
