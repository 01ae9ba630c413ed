package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPExtractor(t *testing.T) {
	testCases := []struct {
		name       string
		proxies    []string
		remoteAddr string
		xff        string
		wantIP     string
	}{
		{
			name:       "Direct ignores forwarded headers",
			remoteAddr: "203.0.113.7:51000",
			xff:        "1.1.1.1",
			wantIP:     "203.0.113.7",
		},
		{
			name:       "Trusted proxy forwards the client",
			proxies:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:443",
			xff:        "203.0.113.9",
			wantIP:     "203.0.113.9",
		},
		{
			name:       "Client prepended entries are skipped",
			proxies:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:443",
			xff:        "1.1.1.1, 203.0.113.9",
			wantIP:     "203.0.113.9",
		},
		{
			name:       "Untrusted peer cannot forward",
			proxies:    []string{"10.0.0.0/8"},
			remoteAddr: "198.51.100.4:443",
			xff:        "1.1.1.1",
			wantIP:     "198.51.100.4",
		},
		{
			name:       "Private ranges are not trusted implicitly",
			proxies:    []string{"10.0.0.5"},
			remoteAddr: "192.168.1.20:443",
			xff:        "1.1.1.1",
			wantIP:     "192.168.1.20",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			extract, err := IPExtractor(tc.proxies)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			req.Header.Set(echo.HeaderXForwardedFor, tc.xff)

			assert.Equal(t, tc.wantIP, extract(req))
		})
	}
}

func TestIPExtractor_InvalidProxy(t *testing.T) {
	_, err := IPExtractor([]string{"not-an-ip"})
	assert.Error(t, err)

	_, err = IPExtractor([]string{"10.0.0.0/33"})
	assert.Error(t, err)
}
