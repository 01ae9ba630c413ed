package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/utils"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware turns a panic into a logged 500
func PanicRecoveryMiddleware(l *logger.ZapLogger) echo.MiddlewareFunc {
	if l == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				userID := "anonymous"
				if uid := c.Get("user_id"); uid != nil {
					userID = fmt.Sprintf("%v", uid)
				}

				l.Error("Panic recovered during request processing",
					logger.Any("panic_value", r),
					logger.String("panic_type", fmt.Sprintf("%T", r)),
					logger.String("stack_trace", string(debug.Stack())),
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.String("client_ip", c.RealIP()),
					logger.String("user_id", userID),
					logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				)

				if !c.Response().Committed {
					err = utils.InternalServerErrorResponse(c, "")
				}
			}()

			return next(c)
		}
	}
}
