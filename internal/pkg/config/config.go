package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingSecret is returned when a mandatory secret is not configured
var ErrMissingSecret = errors.New("missing required secret")

// InitConfig loads the .env file for local runs and builds the config from the environment
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if v.GetString("APP_ENV") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	configs := loadConfig(v)
	if err := validate(configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_NAME", "clinic")
	v.SetDefault("APP_DEBUG", false)

	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("JWT_ISSUER", "clinic")
	v.SetDefault("JWT_ACCESS_TTL", "15m")
	v.SetDefault("JWT_REFRESH_TTL", "168h")

	v.SetDefault("AUTH_COOKIE_ACCESS_NAME", "access_token")
	v.SetDefault("AUTH_COOKIE_REFRESH_NAME", "refresh_token")
	v.SetDefault("AUTH_COOKIE_PATH", "/")
	v.SetDefault("AUTH_COOKIE_SAMESITE", "Lax")
	v.SetDefault("AUTH_COOKIE_SECURE", true)

	v.SetDefault("OTP_TTL_SECONDS", 120)
	v.SetDefault("OTP_RATE_LIMIT", 3)
	v.SetDefault("OTP_RATE_WINDOW_MINUTES", 10)
	v.SetDefault("OTP_MAX_ATTEMPTS", 5)
	v.SetDefault("OTP_IP_VERIFY_LIMIT", 10)

	v.SetDefault("SMS_BASE_URL", "https://api.kavenegar.com/v1")
	v.SetDefault("SMS_LOGIN_TEMPLATE", "login-otp")
	v.SetDefault("SMS_RECOVERY_TEMPLATE", "recovery-otp")
	v.SetDefault("SMS_TIMEOUT", "10s")
	v.SetDefault("SMS_RATE_PER_SECOND", 5.0)
	v.SetDefault("SMS_BURST", 5)

	v.SetDefault("BITPAY_API_URL", "https://bitpay.com/invoices")
	v.SetDefault("BITPAY_VERIFY_URL", "https://bitpay.ir/payment/gateway-result-second")
	v.SetDefault("BITPAY_CHECKOUT_URL", "https://checkout.bitpay.com/invoice?id=")
	v.SetDefault("BITPAY_CURRENCY", "USD")
	v.SetDefault("BITPAY_TIMEOUT", "10s")

	v.SetDefault("FREE_MAX_STAFF", 5)
	v.SetDefault("FREE_MAX_PATIENTS", 500)
	v.SetDefault("FREE_MAX_APPOINTMENTS", 0)

	v.SetDefault("NSQ_ENABLED", false)
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_TYPE", "console")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.SecretKey = v.GetString("APP_SECRET_KEY")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")
	configs.Server.TrustedProxies = splitList(v.GetString("SERVER_TRUSTED_PROXIES"))

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")
	configs.JWT.AccessTTL = v.GetDuration("JWT_ACCESS_TTL")
	configs.JWT.RefreshTTL = v.GetDuration("JWT_REFRESH_TTL")

	// Cookie config
	configs.Cookie.AccessName = v.GetString("AUTH_COOKIE_ACCESS_NAME")
	configs.Cookie.RefreshName = v.GetString("AUTH_COOKIE_REFRESH_NAME")
	configs.Cookie.Domain = v.GetString("AUTH_COOKIE_DOMAIN")
	configs.Cookie.Path = v.GetString("AUTH_COOKIE_PATH")
	configs.Cookie.SameSite = v.GetString("AUTH_COOKIE_SAMESITE")
	configs.Cookie.Secure = v.GetBool("AUTH_COOKIE_SECURE")

	// OTP config
	configs.OTP.TTL = time.Duration(v.GetInt("OTP_TTL_SECONDS")) * time.Second
	configs.OTP.RateLimit = v.GetInt("OTP_RATE_LIMIT")
	configs.OTP.RateWindow = time.Duration(v.GetInt("OTP_RATE_WINDOW_MINUTES")) * time.Minute
	configs.OTP.MaxAttempts = v.GetInt("OTP_MAX_ATTEMPTS")
	configs.OTP.IPVerifyLimit = v.GetInt("OTP_IP_VERIFY_LIMIT")

	// SMS config
	configs.SMS.APIKey = v.GetString("KAVENEGAR_API_KEY")
	configs.SMS.BaseURL = strings.TrimRight(v.GetString("SMS_BASE_URL"), "/")
	configs.SMS.LoginTemplate = v.GetString("SMS_LOGIN_TEMPLATE")
	configs.SMS.RecoveryTemplate = v.GetString("SMS_RECOVERY_TEMPLATE")
	configs.SMS.Timeout = v.GetDuration("SMS_TIMEOUT")
	configs.SMS.RatePerSecond = v.GetFloat64("SMS_RATE_PER_SECOND")
	configs.SMS.Burst = v.GetInt("SMS_BURST")

	// Gateway config
	configs.Gateway.APIKey = v.GetString("BITPAY_API_KEY")
	configs.Gateway.InvoiceURL = v.GetString("BITPAY_API_URL")
	configs.Gateway.VerifyURL = v.GetString("BITPAY_VERIFY_URL")
	configs.Gateway.CheckoutURL = v.GetString("BITPAY_CHECKOUT_URL")
	configs.Gateway.Currency = v.GetString("BITPAY_CURRENCY")
	configs.Gateway.Timeout = v.GetDuration("BITPAY_TIMEOUT")

	// Webhook config
	configs.Webhook.Token = v.GetString("BITPAY_WEBHOOK_TOKEN")
	configs.Webhook.Secret = v.GetString("BITPAY_WEBHOOK_SECRET")

	// Plan limit config
	configs.Limits.FreeMaxStaff = v.GetInt("FREE_MAX_STAFF")
	configs.Limits.FreeMaxPatients = v.GetInt("FREE_MAX_PATIENTS")
	configs.Limits.FreeMaxAppointments = v.GetInt("FREE_MAX_APPOINTMENTS")

	// NSQ config
	configs.NSQ.Enabled = v.GetBool("NSQ_ENABLED")
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	return configs
}

// splitList parses a comma separated env value, dropping blanks
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func validate(configs *models.Config) error {
	if configs.App.SecretKey == "" {
		return errors.Join(ErrMissingSecret, errors.New("APP_SECRET_KEY"))
	}
	if configs.JWT.Secret == "" {
		return errors.Join(ErrMissingSecret, errors.New("JWT_SECRET"))
	}
	if configs.OTP.TTL <= 0 {
		return errors.New("OTP_TTL_SECONDS must be positive")
	}
	return nil
}
