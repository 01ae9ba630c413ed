package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/codermehran/Mo/internal/pkg/jwt"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/auth/mocks"
)

const (
	testSecret = "test-secret"
	testPhone  = "09123456789"
	testIP     = "10.0.0.1"
)

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{SecretKey: testSecret},
		JWT: models.JWTConfig{
			Secret:     "jwt-secret",
			Issuer:     "clinic-api",
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 7 * 24 * time.Hour,
		},
		OTP: models.OTPConfig{
			TTL:           120 * time.Second,
			RateLimit:     3,
			RateWindow:    10 * time.Minute,
			MaxAttempts:   5,
			IPVerifyLimit: 10,
		},
	}
}

type authUCTest struct {
	uc     *AuthUC
	repo   *mocks.MockAuthRepo
	sms    *mocks.MockSMSGW
	tokens *jwt.Manager
	now    time.Time
}

func setupAuthUC(t *testing.T) *authUCTest {
	ctrl := gomock.NewController(t)

	cfg := testConfig()
	repo := mocks.NewMockAuthRepo(ctrl)
	sms := mocks.NewMockSMSGW(ctrl)
	tokens := jwt.NewManager(cfg.JWT)

	uc := NewAuthUC(cfg, repo, sms, tokens, nil)
	now := time.Now().Truncate(time.Second)
	uc.now = func() time.Time { return now }

	return &authUCTest{uc: uc, repo: repo, sms: sms, tokens: tokens, now: now}
}
