package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters recorded by the auth, billing and clinic flows.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	otpIssued           *prometheus.CounterVec
	otpVerifications    *prometheus.CounterVec
	webhookCallbacks    *prometheus.CounterVec
	planLimitRejections *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// New registers every collector on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		otpIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_otp_issue_total",
			Help: "OTP issuance requests by purpose and outcome.",
		}, []string{"purpose", "outcome"}),
		otpVerifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_otp_verify_total",
			Help: "OTP verification attempts by outcome.",
		}, []string{"outcome"}),
		webhookCallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_billing_webhook_total",
			Help: "Payment gateway callbacks by outcome.",
		}, []string{"outcome"}),
		planLimitRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_plan_limit_rejections_total",
			Help: "Metered writes rejected by the free tier quota.",
		}, []string{"action"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.otpIssued,
		m.otpVerifications,
		m.webhookCallbacks,
		m.planLimitRejections,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// OTPIssued counts an issuance outcome
func (m *Metrics) OTPIssued(purpose, outcome string) {
	if m == nil {
		return
	}
	m.otpIssued.WithLabelValues(purpose, outcome).Inc()
}

// OTPVerified counts a verification outcome
func (m *Metrics) OTPVerified(outcome string) {
	if m == nil {
		return
	}
	m.otpVerifications.WithLabelValues(outcome).Inc()
}

// WebhookHandled counts a gateway callback outcome
func (m *Metrics) WebhookHandled(outcome string) {
	if m == nil {
		return
	}
	m.webhookCallbacks.WithLabelValues(outcome).Inc()
}

// PlanLimitRejected counts a quota rejection
func (m *Metrics) PlanLimitRejected(action string) {
	if m == nil {
		return
	}
	m.planLimitRejections.WithLabelValues(action).Inc()
}

// EchoMiddleware records request counts and latencies by route
func (m *Metrics) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			labels := []string{c.Request().Method, c.Path(), strconv.Itoa(status)}
			m.httpRequests.WithLabelValues(labels...).Inc()
			m.httpDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
