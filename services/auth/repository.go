package auth

import (
	"context"
	"time"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/codermehran/Mo/services/auth AuthRepo

// AuthRepo is the credential store plus the ephemeral counters kept in Redis
type AuthRepo interface {
	// otp_requests
	CountOTPByPhoneSince(ctx context.Context, phone string, since time.Time) (int, error)
	CountOTPByIPSince(ctx context.Context, ip string, since time.Time) (int, error)
	CreateOTP(ctx context.Context, otp *models.OTPRecord) error
	DeleteOTP(ctx context.Context, id uuid.UUID) error
	GetLatestPendingOTP(ctx context.Context, phone string, purpose models.OTPPurpose) (*models.OTPRecord, error)
	IncrementOTPAttempts(ctx context.Context, id uuid.UUID) (int, error)
	MarkOTPVerified(ctx context.Context, id uuid.UUID) (bool, error)

	// users
	FindUsersByPhone(ctx context.Context, phone string, limit int) ([]*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// redis
	IncrementVerifyAttempts(ctx context.Context, ip string, purpose models.OTPPurpose, window time.Duration) (int64, error)
	BlacklistRefreshToken(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)
}
