package auth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPhone      = errors.New("phone number is required")
	ErrInvalidPurpose    = errors.New("invalid purpose")
	ErrInvalidCodeFormat = errors.New("code must be 6 digits")

	ErrRateLimited     = errors.New("otp request rate limit exceeded")
	ErrUserNotFound    = errors.New("no user registered with this phone number")
	ErrAmbiguousUser   = errors.New("multiple users share this phone number")
	ErrDeliveryFailed  = errors.New("failed to deliver otp")
	ErrIPThrottled     = errors.New("too many verification attempts from this ip")
	ErrNoPendingOTP    = errors.New("no pending otp for this phone number")
	ErrTooManyAttempts = errors.New("too many verification attempts")
	ErrOTPExpired      = errors.New("otp code has expired")
	ErrInvalidOTP      = errors.New("invalid otp code")
	ErrRefreshRequired = errors.New("refresh token is required")
	ErrInvalidRefresh  = errors.New("invalid or expired refresh token")
)

// AttemptError is a verification failure that already consumed an attempt
type AttemptError struct {
	Err      error
	Attempts int
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("%s (attempts=%d)", e.Err, e.Attempts)
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}

// WithAttempts attaches the attempt count of the consumed OTP record to err
func WithAttempts(err error, attempts int) error {
	return &AttemptError{Err: err, Attempts: attempts}
}
