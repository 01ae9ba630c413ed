package auth

import (
	"context"

	"github.com/codermehran/Mo/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/codermehran/Mo/services/auth AuthUC

// AuthUC issues and verifies one-time codes and manages the resulting sessions
type AuthUC interface {
	// OTP engine
	RequestOTP(ctx context.Context, req *models.RequestOTPRequest, clientIP string) (*models.RequestOTPResponse, error)
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest, clientIP string) (*models.Session, error)

	// session issuer
	RefreshSession(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// TokenIssuer mints and parses session tokens
type TokenIssuer interface {
	GeneratePair(user *models.User) (models.TokenPair, error)
	Parse(tokenString string, expected models.TokenType) (*models.TokenClaims, error)
}
