package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in every code
const OTPLength = 6

var otpSpace = big.NewInt(1_000_000)

// GenerateOTPCode draws a code uniformly from 000000-999999
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpSpace)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", OTPLength, n.Int64()), nil
}

// HashOTP keys the code to its phone number with the server secret
func HashOTP(secret, phone, code string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(phone + "|" + code))
	return hex.EncodeToString(mac.Sum(nil))
}

// OTPHashEqual compares two hex hashes in constant time
func OTPHashEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}

// IsOTPFormat reports whether code is exactly six ASCII digits
func IsOTPFormat(code string) bool {
	if len(code) != OTPLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// SignHMAC returns the hex HMAC-SHA256 of payload
func SignHMAC(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
