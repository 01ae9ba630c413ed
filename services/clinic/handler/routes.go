package handler

import (
	"github.com/codermehran/Mo/internal/pkg/middleware"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/clinic/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler registers the clinic endpoints
type Handler struct {
	clinicHandler *http.ClinicHandler
	tokens        middleware.TokenParser
	cfg           *models.Config
}

// NewHandler creates the clinic route handler
func NewHandler(clinicHandler *http.ClinicHandler, tokens middleware.TokenParser, cfg *models.Config) *Handler {
	return &Handler{
		clinicHandler: clinicHandler,
		tokens:        tokens,
		cfg:           cfg,
	}
}

// RegisterRoutes registers clinic setup and the metered create routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authed := middleware.JWTAuthMiddleware(h.tokens, h.cfg.Cookie.AccessName)

	e.POST("/api/clinics", h.clinicHandler.CreateClinic, authed)
	e.GET("/api/clinics/me", h.clinicHandler.GetMyClinic, authed)
	e.PUT("/api/clinics/me", h.clinicHandler.UpdateMyClinic, authed)

	e.POST("/api/patients", h.clinicHandler.CreatePatient, authed)
	e.POST("/api/staff", h.clinicHandler.CreateStaff, authed)
	e.POST("/api/appointments", h.clinicHandler.CreateAppointment, authed)
}
