package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.OTPIssued("LOGIN", "sent")
	m.OTPIssued("LOGIN", "sent")
	m.OTPVerified("invalid")
	m.WebhookHandled("already_processed")
	m.PlanLimitRejected("CREATE_PATIENT")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.otpIssued.WithLabelValues("LOGIN", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.otpVerifications.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.webhookCallbacks.WithLabelValues("already_processed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.planLimitRejections.WithLabelValues("CREATE_PATIENT")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.OTPIssued("LOGIN", "sent")
		m.OTPVerified("ok")
		m.WebhookHandled("ok")
		m.PlanLimitRejected("CREATE_STAFF")
	})
}

func TestHandlerAndMiddleware(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.EchoMiddleware())
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/ping",status="200"} 1`)
}
