package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	OTP      OTPConfig
	SMS      SMSConfig
	Gateway  GatewayConfig
	Webhook  WebhookConfig
	Limits   PlanLimitConfig
	NSQ      NSQConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	// SecretKey keys the OTP code hashes. Required.
	SecretKey string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	// TrustedProxies lists the proxy IPs or CIDRs allowed to set X-Forwarded-For
	TrustedProxies []string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains token signing configuration
type JWTConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// CookieConfig controls how session tokens are written as cookies
type CookieConfig struct {
	AccessName  string
	RefreshName string
	Domain      string
	Path        string
	SameSite    string
	Secure      bool
}

// OTPConfig holds issuance and verification limits
type OTPConfig struct {
	TTL           time.Duration
	RateLimit     int
	RateWindow    time.Duration
	MaxAttempts   int
	IPVerifyLimit int
}

// SMSConfig configures the OTP delivery provider
type SMSConfig struct {
	APIKey           string
	BaseURL          string
	LoginTemplate    string
	RecoveryTemplate string
	Timeout          time.Duration
	RatePerSecond    float64
	Burst            int
}

// GatewayConfig configures the payment gateway client
type GatewayConfig struct {
	APIKey      string
	InvoiceURL  string
	VerifyURL   string
	CheckoutURL string
	Currency    string
	Timeout     time.Duration
}

// WebhookConfig holds the shared credentials for gateway callbacks
type WebhookConfig struct {
	Token  string
	Secret string
}

// PlanLimitConfig holds free tier ceilings, 0 disables a ceiling
type PlanLimitConfig struct {
	FreeMaxStaff        int
	FreeMaxPatients     int
	FreeMaxAppointments int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
