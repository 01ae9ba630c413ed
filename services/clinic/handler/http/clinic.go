package http

import (
	"errors"
	"net/http"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/middleware"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/internal/utils"
	"github.com/codermehran/Mo/services/clinic"
	"github.com/labstack/echo/v4"
)

// ClinicHandler handles HTTP requests for clinic setup and metered creates
type ClinicHandler struct {
	clinicUC clinic.ClinicUC
}

// NewClinicHandler creates a new clinic handler
func NewClinicHandler(clinicUC clinic.ClinicUC) *ClinicHandler {
	return &ClinicHandler{
		clinicUC: clinicUC,
	}
}

// clinicErrors maps usecase errors to responses. An empty detail echoes the error text.
var clinicErrors = []struct {
	err    error
	status int
	detail string
}{
	{clinic.ErrPlanLimitExceeded, http.StatusPaymentRequired, "PLAN_LIMIT"},
	{clinic.ErrForbidden, http.StatusForbidden, "You do not have permission to perform this action."},
	{clinic.ErrSetupRequired, http.StatusNotFound, "setup_required"},
	{clinic.ErrClinicAssigned, http.StatusBadRequest, "Clinic already assigned."},
	{clinic.ErrClinicNotFound, http.StatusNotFound, "Clinic not found."},
	{clinic.ErrUserNotFound, http.StatusNotFound, "User not found."},
	{clinic.ErrDuplicate, http.StatusBadRequest, ""},
	{clinic.ErrInvalidClinic, http.StatusBadRequest, ""},
	{clinic.ErrInvalidPatient, http.StatusBadRequest, ""},
	{clinic.ErrInvalidStaff, http.StatusBadRequest, ""},
	{clinic.ErrInvalidAppointment, http.StatusBadRequest, ""},
	{clinic.ErrPatientNotFound, http.StatusBadRequest, "Patient not found in this clinic."},
	{clinic.ErrPractitionerNotFound, http.StatusBadRequest, "Practitioner not found in this clinic."},
}

func clinicErrorResponse(c echo.Context, err error) error {
	for _, e := range clinicErrors {
		if !errors.Is(err, e.err) {
			continue
		}
		detail := e.detail
		if detail == "" {
			detail = err.Error()
		}
		return utils.ErrorResponseHandler(c, e.status, detail)
	}

	logger.Error("Unexpected clinic error",
		logger.ErrorField(err),
		logger.String("path", c.Path()))
	return utils.InternalServerErrorResponse(c, "")
}

func bindError(c echo.Context, endpoint string, err error) error {
	logger.Warn("Invalid request payload",
		logger.ErrorField(err),
		logger.String("endpoint", endpoint))
	return utils.BadRequestResponse(c, "Invalid request payload")
}

// CreateClinic handles POST /api/clinics
func (h *ClinicHandler) CreateClinic(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateClinicRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, "CreateClinic", err)
	}

	created, err := h.clinicUC.CreateClinic(c.Request().Context(), claims.UserID, &req)
	if err != nil {
		return clinicErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, created)
}

// GetMyClinic handles GET /api/clinics/me
func (h *ClinicHandler) GetMyClinic(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	found, err := h.clinicUC.GetMyClinic(c.Request().Context(), claims.UserID)
	if err != nil {
		return clinicErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, found)
}

// UpdateMyClinic handles PUT /api/clinics/me
func (h *ClinicHandler) UpdateMyClinic(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateClinicRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, "UpdateMyClinic", err)
	}

	updated, err := h.clinicUC.UpdateMyClinic(c.Request().Context(), claims.UserID, &req)
	if err != nil {
		return clinicErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, updated)
}

// CreatePatient handles POST /api/patients
func (h *ClinicHandler) CreatePatient(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreatePatientRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, "CreatePatient", err)
	}

	patient, err := h.clinicUC.CreatePatient(c.Request().Context(), claims.UserID, &req)
	if err != nil {
		return clinicErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, patient)
}

// CreateStaff handles POST /api/staff
func (h *ClinicHandler) CreateStaff(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateStaffRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, "CreateStaff", err)
	}

	member, err := h.clinicUC.CreateStaff(c.Request().Context(), claims.UserID, &req)
	if err != nil {
		return clinicErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, member)
}

// CreateAppointment handles POST /api/appointments
func (h *ClinicHandler) CreateAppointment(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, "CreateAppointment", err)
	}

	appointment, err := h.clinicUC.CreateAppointment(c.Request().Context(), claims.UserID, &req)
	if err != nil {
		return clinicErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, appointment)
}
