package middleware

import (
	"bytes"
	"crypto/subtle"
	"io"
	"net/http"
	"strings"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/internal/utils"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderWebhookToken carries the shared webhook token
	HeaderWebhookToken = "X-Webhook-Token"
	// HeaderSignature carries the hex HMAC-SHA256 of the raw body
	HeaderSignature = "X-Signature"

	maxWebhookBody = 1 << 20
)

// WebhookAuthMiddleware authenticates gateway callbacks before the handler reads the payload.
// Every configured credential must match; with none configured the endpoint refuses to work.
func WebhookAuthMiddleware(cfg models.WebhookConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Token == "" && cfg.Secret == "" {
				logger.Error("Webhook received but no webhook token or secret is configured",
					logger.String("path", c.Request().URL.Path))
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "webhook_not_configured")
			}

			if cfg.Token != "" {
				provided := c.Request().Header.Get(HeaderWebhookToken)
				if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.Token)) != 1 {
					logger.Warn("Webhook rejected", logger.String("reason", "invalid_token"), logger.String("client_ip", c.RealIP()))
					return utils.UnauthorizedResponse(c, "invalid_token")
				}
			}

			if cfg.Secret != "" {
				body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
				if err != nil {
					return utils.BadRequestResponse(c, "invalid_body")
				}
				c.Request().Body = io.NopCloser(bytes.NewReader(body))

				provided := strings.ToLower(strings.TrimSpace(c.Request().Header.Get(HeaderSignature)))
				expected := utils.SignHMAC(cfg.Secret, body)
				if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
					logger.Warn("Webhook rejected", logger.String("reason", "invalid_signature"), logger.String("client_ip", c.RealIP()))
					return utils.UnauthorizedResponse(c, "invalid_signature")
				}
			}

			return next(c)
		}
	}
}
