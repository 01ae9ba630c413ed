package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/internal/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookAuthMiddleware(t *testing.T) {
	body := `{"reference_id":"abc","status":"PAID"}`
	goodSig := utils.SignHMAC("hook-secret", []byte(body))

	tests := []struct {
		name       string
		cfg        models.WebhookConfig
		headers    map[string]string
		wantStatus int
		wantDetail string
		wantCalled bool
	}{
		{
			name:       "nothing configured",
			cfg:        models.WebhookConfig{},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "webhook_not_configured",
		},
		{
			name:       "token matches",
			cfg:        models.WebhookConfig{Token: "hook-token"},
			headers:    map[string]string{HeaderWebhookToken: "hook-token"},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "token mismatch",
			cfg:        models.WebhookConfig{Token: "hook-token"},
			headers:    map[string]string{HeaderWebhookToken: "guess"},
			wantStatus: http.StatusUnauthorized,
			wantDetail: "invalid_token",
		},
		{
			name:       "signature matches",
			cfg:        models.WebhookConfig{Secret: "hook-secret"},
			headers:    map[string]string{HeaderSignature: goodSig},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "signature missing",
			cfg:        models.WebhookConfig{Secret: "hook-secret"},
			wantStatus: http.StatusUnauthorized,
			wantDetail: "invalid_signature",
		},
		{
			name:       "token ok but signature wrong",
			cfg:        models.WebhookConfig{Token: "hook-token", Secret: "hook-secret"},
			headers:    map[string]string{HeaderWebhookToken: "hook-token", HeaderSignature: strings.Repeat("0", 64)},
			wantStatus: http.StatusUnauthorized,
			wantDetail: "invalid_signature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/billing/webhook/bitpay", strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			handler := WebhookAuthMiddleware(tt.cfg)(func(c echo.Context) error {
				called = true
				data, err := io.ReadAll(c.Request().Body)
				require.NoError(t, err)
				assert.Equal(t, body, string(data))
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantDetail != "" {
				assert.Contains(t, rec.Body.String(), tt.wantDetail)
			}
		})
	}
}
