package constants

// Redis key formats
const (
	// KeyOTPVerifyAttempts counts verify attempts per client. Format: otp-verify:{ip}:{purpose}
	KeyOTPVerifyAttempts = "otp-verify:%s:%s"
	// KeyRefreshBlacklist marks a revoked refresh token. Format: auth:refresh:blacklist:{jti}
	KeyRefreshBlacklist = "auth:refresh:blacklist:%s"
)

// NSQ topics
const (
	TopicSubscriptionActivated = "billing.subscription.activated"
)
