package handler

import (
	"github.com/codermehran/Mo/internal/pkg/middleware"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/auth/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler registers the auth endpoints
type Handler struct {
	authHandler *http.AuthHandler
	tokens      middleware.TokenParser
	cfg         *models.Config
}

// NewHandler creates the auth route handler
func NewHandler(authHandler *http.AuthHandler, tokens middleware.TokenParser, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		tokens:      tokens,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the OTP and session routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/api/auth")
	authGroup.POST("/request-otp", h.authHandler.RequestOTP)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
	authGroup.POST("/refresh-token", h.authHandler.RefreshToken)

	// logout requires a valid access token
	authGroup.POST("/logout", h.authHandler.Logout, middleware.JWTAuthMiddleware(h.tokens, h.cfg.Cookie.AccessName))
}
