package auth

import (
	"context"

	"github.com/codermehran/Mo/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/codermehran/Mo/services/auth SMSGW

// SMSGW delivers one-time codes to a phone number
type SMSGW interface {
	SendOTP(ctx context.Context, phone, code string, purpose models.OTPPurpose) error
}
