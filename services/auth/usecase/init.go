package usecase

import (
	"time"

	"github.com/codermehran/Mo/internal/pkg/metrics"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/auth"
)

// AuthUC implements the OTP engine and the session issuer
type AuthUC struct {
	authRepo auth.AuthRepo
	smsGW    auth.SMSGW
	tokens   auth.TokenIssuer
	metrics  *metrics.Metrics
	otpCfg   models.OTPConfig
	secret   string
	now      func() time.Time
}

// NewAuthUC creates a new auth usecase instance. The HMAC secret for code
// hashes is taken from cfg once and never re-read.
func NewAuthUC(
	cfg *models.Config,
	authRepo auth.AuthRepo,
	smsGW auth.SMSGW,
	tokens auth.TokenIssuer,
	m *metrics.Metrics,
) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		smsGW:    smsGW,
		tokens:   tokens,
		metrics:  m,
		otpCfg:   cfg.OTP,
		secret:   cfg.App.SecretKey,
		now:      time.Now,
	}
}
