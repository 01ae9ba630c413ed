package logger

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "empty", phone: "", want: ""},
		{name: "short", phone: "123", want: "***"},
		{name: "mobile number", phone: "09123456789", want: "***6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskPhone(tt.phone))
		})
	}
}

func TestNewZapLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := NewZapLogger(models.LoggerConfig{Level: "debug", FilePath: path, Type: "file"})
	require.NoError(t, err)

	l.Info("otp issued", Phone("phone", "09123456789"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "otp issued")
	assert.Contains(t, string(data), "***6789")
	assert.NotContains(t, string(data), "09123456789")
}

func TestGetGlobalLogger_DefaultsToNop(t *testing.T) {
	SetGlobalLogger(nil)
	assert.NotNil(t, GetGlobalLogger())
	assert.NotPanics(t, func() { Info("no logger configured") })
}

func TestZapEchoMiddleware(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	l, err := NewZapLogger(models.LoggerConfig{Level: "info", FilePath: path, Type: "file"})
	require.NoError(t, err)

	e := echo.New()
	handler := ZapEchoMiddleware(l)(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/billing/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	require.NoError(t, l.Close())

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"status":502`))
}
