package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/codermehran/Mo/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "clinic-api"

// ZapLogger wraps zap with console and optional file output
type ZapLogger struct {
	*zap.Logger
	file *os.File
}

// NewZapLogger creates a JSON logger writing to stdout and, when configured, a file
func NewZapLogger(cfg models.LoggerConfig) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})

	zl := &ZapLogger{}
	var cores []zapcore.Core
	if cfg.Type != "file" {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))
	}
	if cfg.FilePath != "" && cfg.Type != "console" {
		if err := zl.openFile(cfg.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zl.file), level))
	}
	if len(cores) == 0 {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))
	}

	zl.Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("service", serviceName))
	return zl, nil
}

func (zl *ZapLogger) openFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	zl.file = file
	return nil
}

// Close flushes buffered entries and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// LogHTTPRequest writes one access log line, levelled by status code
func (zl *ZapLogger) LogHTTPRequest(method, path, clientIP, userID, requestID string, statusCode int, latency time.Duration, err error) {
	l := zl.Logger.With(
		zap.Int("status", statusCode),
		zap.Int64("latency_ms", latency.Milliseconds()),
		zap.String("client_ip", clientIP),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("user_id", userID),
		zap.String("request_id", requestID),
	)

	switch {
	case statusCode >= 500:
		l.Error("Server error", zap.Error(err))
	case statusCode >= 400:
		l.Warn("Client error")
	default:
		l.Info("Request processed")
	}
}
