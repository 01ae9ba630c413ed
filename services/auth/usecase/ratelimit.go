package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/auth"
)

// allowIssue counts what was issued in the trailing window, per phone and per ip.
// It returns the phone count so the caller can derive sent_count.
func (u *AuthUC) allowIssue(ctx context.Context, phone, clientIP string, now time.Time) (int, error) {
	since := now.Add(-u.otpCfg.RateWindow)

	phoneCount, err := u.authRepo.CountOTPByPhoneSince(ctx, phone, since)
	if err != nil {
		return 0, err
	}

	ipCount := 0
	if clientIP != "" {
		ipCount, err = u.authRepo.CountOTPByIPSince(ctx, clientIP, since)
		if err != nil {
			return 0, err
		}
	}

	if phoneCount >= u.otpCfg.RateLimit || ipCount >= u.otpCfg.RateLimit {
		logger.Warn("OTP request rate limit hit",
			logger.Phone("phone", phone),
			logger.String("ip", clientIP),
			logger.Int("phone_count", phoneCount),
			logger.Int("ip_count", ipCount))
		return phoneCount, auth.ErrRateLimited
	}
	return phoneCount, nil
}

// allowVerifyAttempt throttles verification per client ip and purpose
func (u *AuthUC) allowVerifyAttempt(ctx context.Context, phone, clientIP string, purpose models.OTPPurpose) error {
	if clientIP == "" {
		return nil
	}

	attempts, err := u.authRepo.IncrementVerifyAttempts(ctx, clientIP, purpose, u.otpCfg.RateWindow)
	if err != nil {
		return fmt.Errorf("failed to check verify throttle: %w", err)
	}

	if attempts > int64(u.otpCfg.IPVerifyLimit) {
		logger.Warn("OTP verify blocked due to IP limit",
			logger.Phone("phone", phone),
			logger.String("ip", clientIP),
			logger.String("purpose", string(purpose)),
			logger.Int64("attempts", attempts))
		return auth.ErrIPThrottled
	}
	return nil
}
