package handler

import (
	"github.com/codermehran/Mo/internal/pkg/middleware"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/billing/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler registers the billing endpoints
type Handler struct {
	billingHandler *http.BillingHandler
	tokens         middleware.TokenParser
	cfg            *models.Config
}

// NewHandler creates the billing route handler
func NewHandler(billingHandler *http.BillingHandler, tokens middleware.TokenParser, cfg *models.Config) *Handler {
	return &Handler{
		billingHandler: billingHandler,
		tokens:         tokens,
		cfg:            cfg,
	}
}

// RegisterRoutes registers checkout, status and the gateway callback
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	billingGroup := e.Group("/api/billing")

	authed := middleware.JWTAuthMiddleware(h.tokens, h.cfg.Cookie.AccessName)
	billingGroup.POST("/create-checkout", h.billingHandler.CreateCheckout, authed)
	billingGroup.GET("/status", h.billingHandler.GetStatus, authed)

	// gateway callbacks authenticate with a shared token or body signature
	billingGroup.POST("/webhook/bitpay", h.billingHandler.Webhook, middleware.WebhookAuthMiddleware(h.cfg.Webhook))
}
