package utils

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidPhoneNumber is returned for phone numbers that cannot be used as an OTP subject
var ErrInvalidPhoneNumber = errors.New("invalid phone number")

var phonePattern = regexp.MustCompile(`^\+?[0-9]{6,20}$`)

// NormalizePhoneNumber trims whitespace and separators and validates what is left
func NormalizePhoneNumber(phone string) (string, error) {
	cleaned := strings.TrimSpace(phone)
	cleaned = strings.NewReplacer(" ", "", "-", "").Replace(cleaned)
	if !phonePattern.MatchString(cleaned) {
		return "", ErrInvalidPhoneNumber
	}
	return cleaned, nil
}
