package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/codermehran/Mo/internal/pkg/circuitbreaker"
	"github.com/labstack/echo/v4"
)

// Checker reports whether a dependency is reachable
type Checker interface {
	Ping(ctx context.Context) error
}

// Breaker exposes an outbound provider guard. Its state is reported but never degrades health.
type Breaker interface {
	Name() string
	State() circuitbreaker.State
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Status is the body of the health endpoint
type Status struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Breakers     map[string]string `json:"breakers,omitempty"`
}

// NewPingHandler returns build information for the service
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     "development",
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if v := os.Getenv("VERSION"); v != "" {
		info.Version = v
	}
	if v := os.Getenv("GIT_COMMIT"); v != "" {
		info.GitCommit = v
	}

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now()
		return c.JSON(http.StatusOK, resp)
	}
}

// NewHealthHandler pings every dependency and answers 503 if any is down
func NewHealthHandler(checkers map[string]Checker, breakers ...Breaker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		status := Status{Status: "ok", Dependencies: make(map[string]string, len(checkers))}
		code := http.StatusOK
		for name, checker := range checkers {
			if err := checker.Ping(ctx); err != nil {
				status.Dependencies[name] = "down"
				status.Status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			status.Dependencies[name] = "up"
		}
		if len(breakers) > 0 {
			status.Breakers = make(map[string]string, len(breakers))
			for _, b := range breakers {
				status.Breakers[b.Name()] = strings.ToLower(b.State().String())
			}
		}
		return c.JSON(code, status)
	}
}

// RegisterHealthEndpoints registers /ping and /health
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers map[string]Checker, breakers ...Breaker) {
	e.GET("/ping", NewPingHandler(serviceName))
	e.GET("/health", NewHealthHandler(checkers, breakers...))
}
