package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/internal/utils"
	"github.com/codermehran/Mo/services/auth"
)

func validateSubject(phone string, purpose models.OTPPurpose) (string, error) {
	normalized, err := utils.NormalizePhoneNumber(phone)
	if err != nil {
		return "", auth.ErrInvalidPhone
	}
	if !purpose.Valid() {
		return "", auth.ErrInvalidPurpose
	}
	return normalized, nil
}

// RequestOTP issues a new code for a registered phone number and sends it by SMS
func (u *AuthUC) RequestOTP(ctx context.Context, req *models.RequestOTPRequest, clientIP string) (*models.RequestOTPResponse, error) {
	phone, err := validateSubject(req.PhoneNumber, req.Purpose)
	if err != nil {
		return nil, err
	}

	now := u.now()
	phoneCount, err := u.allowIssue(ctx, phone, clientIP, now)
	if err != nil {
		if errors.Is(err, auth.ErrRateLimited) {
			u.metrics.OTPIssued(string(req.Purpose), "rate_limited")
		}
		return nil, err
	}

	user, err := u.findSingleUser(ctx, phone)
	if err != nil {
		return nil, err
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return nil, err
	}

	otp := &models.OTPRecord{
		UserID:      &user.ID,
		PhoneNumber: phone,
		Purpose:     req.Purpose,
		CodeHash:    utils.HashOTP(u.secret, phone, code),
		SentCount:   phoneCount + 1,
		CreatedAt:   now,
		ExpiresAt:   now.Add(u.otpCfg.TTL),
	}
	if clientIP != "" {
		otp.IPAddress = &clientIP
	}

	if err := u.authRepo.CreateOTP(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to create OTP: %w", err)
	}

	if err := u.smsGW.SendOTP(ctx, phone, code, req.Purpose); err != nil {
		if delErr := u.authRepo.DeleteOTP(ctx, otp.ID); delErr != nil {
			logger.Error("Failed to delete undelivered OTP",
				logger.String("otp_id", otp.ID.String()),
				logger.ErrorField(delErr))
		}
		u.metrics.OTPIssued(string(req.Purpose), "delivery_failed")
		return nil, fmt.Errorf("%w: %v", auth.ErrDeliveryFailed, err)
	}

	u.metrics.OTPIssued(string(req.Purpose), "sent")
	logger.Info("OTP sent",
		logger.Phone("phone", phone),
		logger.String("ip", clientIP),
		logger.String("purpose", string(req.Purpose)),
		logger.Int("sent_count", otp.SentCount))

	return &models.RequestOTPResponse{
		SentCount: otp.SentCount,
		ExpiresIn: int(u.otpCfg.TTL.Seconds()),
		Purpose:   req.Purpose,
	}, nil
}

// VerifyOTP checks a candidate code against the newest pending record and
// opens a session on success. Every check after the attempt counter is
// incremented reports the new count.
func (u *AuthUC) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest, clientIP string) (*models.Session, error) {
	phone, err := validateSubject(req.PhoneNumber, req.Purpose)
	if err != nil {
		return nil, err
	}
	if !utils.IsOTPFormat(req.Code) {
		return nil, auth.ErrInvalidCodeFormat
	}

	if err := u.allowVerifyAttempt(ctx, phone, clientIP, req.Purpose); err != nil {
		if errors.Is(err, auth.ErrIPThrottled) {
			u.metrics.OTPVerified("ip_throttled")
		}
		return nil, err
	}

	otp, err := u.authRepo.GetLatestPendingOTP(ctx, phone, req.Purpose)
	if err != nil {
		return nil, err
	}

	attempts, err := u.authRepo.IncrementOTPAttempts(ctx, otp.ID)
	if err != nil {
		return nil, err
	}

	if attempts > u.otpCfg.MaxAttempts {
		logger.Warn("OTP verify locked due to attempts",
			logger.Phone("phone", phone),
			logger.String("ip", clientIP),
			logger.Int("attempts", attempts))
		u.metrics.OTPVerified("locked")
		return nil, auth.WithAttempts(auth.ErrTooManyAttempts, attempts)
	}

	if otp.IsExpired(u.now()) {
		u.metrics.OTPVerified("expired")
		return nil, auth.WithAttempts(auth.ErrOTPExpired, attempts)
	}

	if !utils.OTPHashEqual(otp.CodeHash, utils.HashOTP(u.secret, phone, req.Code)) {
		logger.Info("OTP verification failed",
			logger.Phone("phone", phone),
			logger.String("ip", clientIP),
			logger.Int("attempts", attempts))
		u.metrics.OTPVerified("invalid")
		return nil, auth.WithAttempts(auth.ErrInvalidOTP, attempts)
	}

	verified, err := u.authRepo.MarkOTPVerified(ctx, otp.ID)
	if err != nil {
		return nil, err
	}
	if !verified {
		// a concurrent request verified the same record first
		return nil, auth.ErrNoPendingOTP
	}

	u.metrics.OTPVerified("verified")
	logger.Info("OTP verified",
		logger.Phone("phone", phone),
		logger.String("ip", clientIP),
		logger.Int("attempts", attempts))

	user, err := u.resolveSubject(ctx, otp, phone)
	if err != nil {
		return nil, auth.WithAttempts(err, attempts)
	}

	pair, err := u.tokens.GeneratePair(user)
	if err != nil {
		return nil, err
	}

	return &models.Session{
		Attempts:      attempts,
		UserID:        user.ID,
		Role:          user.Role,
		RequiresSetup: user.RequiresSetup(),
		ClinicID:      user.ClinicID,
		Tokens:        pair,
	}, nil
}

// resolveSubject prefers the user linked to the record and falls back to the phone number
func (u *AuthUC) resolveSubject(ctx context.Context, otp *models.OTPRecord, phone string) (*models.User, error) {
	if otp.UserID != nil {
		user, err := u.authRepo.GetUserByID(ctx, *otp.UserID)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, auth.ErrUserNotFound) {
			return nil, err
		}
	}
	return u.findSingleUser(ctx, phone)
}

func (u *AuthUC) findSingleUser(ctx context.Context, phone string) (*models.User, error) {
	users, err := u.authRepo.FindUsersByPhone(ctx, phone, 2)
	if err != nil {
		return nil, err
	}
	switch len(users) {
	case 0:
		return nil, auth.ErrUserNotFound
	case 1:
		return users[0], nil
	default:
		return nil, auth.ErrAmbiguousUser
	}
}
