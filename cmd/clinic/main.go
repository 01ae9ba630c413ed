package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/codermehran/Mo/internal/pkg/circuitbreaker"
	"github.com/codermehran/Mo/internal/pkg/config"
	"github.com/codermehran/Mo/internal/pkg/database"
	"github.com/codermehran/Mo/internal/pkg/health"
	"github.com/codermehran/Mo/internal/pkg/jwt"
	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/metrics"
	"github.com/codermehran/Mo/internal/pkg/middleware"
	nsqpkg "github.com/codermehran/Mo/internal/pkg/nsq"
	"github.com/codermehran/Mo/internal/pkg/server"
	authGateway "github.com/codermehran/Mo/services/auth/gateway"
	authHandler "github.com/codermehran/Mo/services/auth/handler"
	authHTTP "github.com/codermehran/Mo/services/auth/handler/http"
	authRepository "github.com/codermehran/Mo/services/auth/repository"
	authUsecase "github.com/codermehran/Mo/services/auth/usecase"
	billingGateway "github.com/codermehran/Mo/services/billing/gateway"
	billingHandler "github.com/codermehran/Mo/services/billing/handler"
	billingHTTP "github.com/codermehran/Mo/services/billing/handler/http"
	billingRepository "github.com/codermehran/Mo/services/billing/repository"
	billingUsecase "github.com/codermehran/Mo/services/billing/usecase"
	clinicHandler "github.com/codermehran/Mo/services/clinic/handler"
	clinicHTTP "github.com/codermehran/Mo/services/clinic/handler/http"
	clinicRepository "github.com/codermehran/Mo/services/clinic/repository"
	clinicUsecase "github.com/codermehran/Mo/services/clinic/usecase"
)

func main() {
	appName := "clinic-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/clinic.env"
	}

	configs, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Subscription events are optional; a nil publisher turns them off
	var publisher billingGateway.EventPublisher
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to create NSQ producer", logger.Err(err))
		}
		publisher = producer
	}

	m := metrics.New()
	tokens := jwt.NewManager(configs.JWT)

	smsBreaker := circuitbreaker.New(circuitbreaker.DefaultConfig("sms"), zapLogger)
	paymentBreaker := circuitbreaker.New(circuitbreaker.DefaultConfig("payment-gateway"), zapLogger)

	// Auth: credential store, rate limiter, OTP engine and session issuer
	authRepo := authRepository.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)
	smsGW := authGateway.NewSMSGateway(configs.SMS, smsBreaker)
	authUC := authUsecase.NewAuthUC(configs, authRepo, smsGW, tokens, m)
	authRoutes := authHandler.NewHandler(authHTTP.NewAuthHandler(authUC, configs.Cookie), tokens, configs)

	// Billing: checkout and payment reconciliation
	billingRepo := billingRepository.NewBillingRepo(configs, postgresClient.GetDB())
	billingGW := billingGateway.NewBillingGW(configs.Gateway, paymentBreaker, publisher)
	billingUC := billingUsecase.NewBillingUC(configs, billingRepo, billingGW, m)
	billingRoutes := billingHandler.NewHandler(billingHTTP.NewBillingHandler(billingUC), tokens, configs)

	// Clinic: tenant setup and plan-limited creates
	clinicRepo := clinicRepository.NewClinicRepo(configs, postgresClient.GetDB())
	clinicUC := clinicUsecase.NewClinicUC(configs, clinicRepo, m)
	clinicRoutes := clinicHandler.NewHandler(clinicHTTP.NewClinicHandler(clinicUC), tokens, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	ipExtractor, err := server.IPExtractor(configs.Server.TrustedProxies)
	if err != nil {
		zapLogger.Fatal("Invalid trusted proxy configuration", logger.Err(err))
	}
	e.IPExtractor = ipExtractor

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(m.EchoMiddleware())

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": postgresClient,
		"redis":    redisClient,
	}, smsBreaker, paymentBreaker)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Register service routes
	authRoutes.RegisterRoutes(e)
	billingRoutes.RegisterRoutes(e)
	clinicRoutes.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if producer != nil {
		srv.OnShutdown(func(context.Context) error {
			producer.Stop()
			return nil
		})
	}
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(func(context.Context) error { return zapLogger.Close() })

	if err := srv.Start(context.Background()); err != nil {
		zapLogger.Fatal("Server stopped with error",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
