package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenType distinguishes access from refresh tokens
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenPair is a freshly minted access/refresh credential pair
type TokenPair struct {
	Access           string    `json:"access"`
	Refresh          string    `json:"refresh"`
	AccessExpiresAt  time.Time `json:"-"`
	RefreshExpiresAt time.Time `json:"-"`
}

// TokenClaims is what the session issuer reads back from a token
type TokenClaims struct {
	UserID    uuid.UUID
	Role      Role
	ClinicID  *uuid.UUID
	Type      TokenType
	TokenID   string
	ExpiresAt time.Time
}

// Session is the payload returned after a successful OTP verification
type Session struct {
	Attempts      int        `json:"attempts"`
	UserID        uuid.UUID  `json:"user_id"`
	Role          Role       `json:"role"`
	RequiresSetup bool       `json:"requires_setup"`
	ClinicID      *uuid.UUID `json:"clinic_id,omitempty"`
	Tokens        TokenPair  `json:"-"`
}

// RefreshTokenRequest carries a refresh token in the body
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" form:"refresh"`
}
