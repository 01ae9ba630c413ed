package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

// GracefulServer runs echo until the process is signalled, then drains requests
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
	cleanups        []func(context.Context) error
}

// NewGracefulServer configures timeouts from cfg
func NewGracefulServer(e *echo.Echo, l *logger.ZapLogger, cfg models.ServerConfig) *GracefulServer {
	e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second

	shutdown := time.Duration(cfg.ShutdownTimeout) * time.Second
	if shutdown <= 0 {
		shutdown = 30 * time.Second
	}

	return &GracefulServer{
		echo:            e,
		logger:          l,
		addr:            fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		shutdownTimeout: shutdown,
	}
}

// OnShutdown registers a cleanup that runs after the HTTP server stopped, in registration order
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.cleanups = append(s.cleanups, fn)
}

// Start serves until SIGINT/SIGTERM or ctx is done
func (s *GracefulServer) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests and runs the registered cleanups
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		errs = append(errs, err)
	}

	for i, fn := range s.cleanups {
		if err := fn(ctx); err != nil {
			s.logger.Error("Error during component shutdown", logger.Int("component", i), logger.Err(err))
			errs = append(errs, err)
		}
	}

	s.logger.Info("Server shutdown completed")
	return errors.Join(errs...)
}
