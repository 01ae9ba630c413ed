package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPPurpose is what a one-time code is issued for
type OTPPurpose string

const (
	OTPPurposeLogin    OTPPurpose = "LOGIN"
	OTPPurposeRecovery OTPPurpose = "RECOVERY"
)

// Valid reports whether p is a known purpose
func (p OTPPurpose) Valid() bool {
	return p == OTPPurposeLogin || p == OTPPurposeRecovery
}

// OTPRecord is a persisted one-time code. Only the keyed hash of the code is stored.
type OTPRecord struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	PhoneNumber  string     `json:"phone_number" db:"phone_number"`
	Purpose      OTPPurpose `json:"purpose" db:"purpose"`
	CodeHash     string     `json:"-" db:"code_hash"`
	IPAddress    *string    `json:"ip_address,omitempty" db:"ip_address"`
	SentCount    int        `json:"sent_count" db:"sent_count"`
	AttemptCount int        `json:"attempt_count" db:"attempt_count"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt    time.Time  `json:"expires_at" db:"expires_at"`
	IsVerified   bool       `json:"is_verified" db:"is_verified"`
}

// IsExpired reports whether the code can no longer be used at now
func (o *OTPRecord) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// RequestOTPRequest asks for a code to be sent to a phone number
type RequestOTPRequest struct {
	PhoneNumber string     `json:"phone_number" form:"phone_number"`
	Purpose     OTPPurpose `json:"purpose" form:"purpose"`
}

// RequestOTPResponse reports a successful issuance
type RequestOTPResponse struct {
	SentCount int        `json:"sent_count"`
	ExpiresIn int        `json:"expires_in"`
	Purpose   OTPPurpose `json:"purpose"`
}

// VerifyOTPRequest carries a candidate code
type VerifyOTPRequest struct {
	PhoneNumber string     `json:"phone_number" form:"phone_number"`
	Code        string     `json:"code" form:"code"`
	Purpose     OTPPurpose `json:"purpose" form:"purpose"`
}
