package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/codermehran/Mo/internal/pkg/circuitbreaker"
	httpclient "github.com/codermehran/Mo/internal/pkg/http"
	"github.com/codermehran/Mo/internal/pkg/models"
	"golang.org/x/time/rate"
)

var (
	ErrSMSNotConfigured      = errors.New("sms api key is not configured")
	ErrTemplateNotConfigured = errors.New("sms template is not configured for the requested purpose")
)

type lookupResponse struct {
	Return struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"return"`
}

// SMSGateway sends codes through a Kavenegar-style verify lookup API
type SMSGateway struct {
	client  *httpclient.Client
	cfg     models.SMSConfig
	limiter *rate.Limiter
}

// NewSMSGateway creates an SMS gateway paced at cfg.RatePerSecond
func NewSMSGateway(cfg models.SMSConfig, breaker *circuitbreaker.CircuitBreaker) *SMSGateway {
	client := httpclient.NewClient(cfg.BaseURL, cfg.Timeout)
	if breaker != nil {
		client.WithBreaker(breaker)
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &SMSGateway{
		client:  client,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// SendOTP delivers code to phone using the template configured for purpose
func (g *SMSGateway) SendOTP(ctx context.Context, phone, code string, purpose models.OTPPurpose) error {
	if g.cfg.APIKey == "" {
		return ErrSMSNotConfigured
	}

	template := g.template(purpose)
	if template == "" {
		return ErrTemplateNotConfigured
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("sms rate limiter: %w", err)
	}

	form := url.Values{}
	form.Set("receptor", phone)
	form.Set("token", code)
	form.Set("template", template)

	var resp lookupResponse
	path := fmt.Sprintf("/%s/verify/lookup.json", url.PathEscape(g.cfg.APIKey))
	if err := g.client.PostForm(ctx, path, nil, form, &resp); err != nil {
		return fmt.Errorf("failed to send otp via sms provider: %w", err)
	}
	if resp.Return.Status != 200 {
		return fmt.Errorf("sms provider rejected request: status=%d message=%s", resp.Return.Status, resp.Return.Message)
	}
	return nil
}

func (g *SMSGateway) template(purpose models.OTPPurpose) string {
	switch purpose {
	case models.OTPPurposeLogin:
		return g.cfg.LoginTemplate
	case models.OTPPurposeRecovery:
		return g.cfg.RecoveryTemplate
	}
	return ""
}
