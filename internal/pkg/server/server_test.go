package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()
	s := NewGracefulServer(e, logger.GetGlobalLogger(), models.ServerConfig{Port: 8080, ReadTimeout: 5, WriteTimeout: 7})

	assert.Equal(t, ":8080", s.addr)
	assert.Equal(t, 30*time.Second, s.shutdownTimeout)
	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 7*time.Second, e.Server.WriteTimeout)
}

func TestGracefulServer_StartAndStop(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	port := freePort(t)
	s := NewGracefulServer(e, logger.GetGlobalLogger(), models.ServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: 2})

	var cleaned []string
	s.OnShutdown(func(context.Context) error { cleaned = append(cleaned, "redis"); return nil })
	s.OnShutdown(func(context.Context) error { cleaned = append(cleaned, "postgres"); return errors.New("close failed") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + s.addr + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "close failed")
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"redis", "postgres"}, cleaned)
}
