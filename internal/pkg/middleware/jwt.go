package middleware

import (
	"strings"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/internal/utils"
	"github.com/labstack/echo/v4"
)

// TokenParser validates session tokens
type TokenParser interface {
	Parse(tokenString string, expected models.TokenType) (*models.TokenClaims, error)
}

// JWTAuthMiddleware accepts an access token from the Authorization header or the access cookie
func JWTAuthMiddleware(parser TokenParser, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := ""
			if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
					return utils.UnauthorizedResponse(c, "Invalid authorization format")
				}
				tokenString = parts[1]
			} else if cookie, err := c.Cookie(cookieName); err == nil {
				tokenString = cookie.Value
			}

			if tokenString == "" {
				return utils.UnauthorizedResponse(c, "")
			}

			claims, err := parser.Parse(tokenString, models.TokenTypeAccess)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Given token not valid for any token type")
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_role", claims.Role)
			c.Set("claims", claims)

			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims stored by JWTAuthMiddleware
func ClaimsFromContext(c echo.Context) (*models.TokenClaims, bool) {
	claims, ok := c.Get("claims").(*models.TokenClaims)
	return claims, ok
}
