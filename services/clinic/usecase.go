package clinic

import (
	"context"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/codermehran/Mo/services/clinic ClinicUC

// ClinicUC covers tenant setup and the metered writes guarded by the plan limits
type ClinicUC interface {
	CreateClinic(ctx context.Context, userID uuid.UUID, req *models.CreateClinicRequest) (*models.Clinic, error)
	GetMyClinic(ctx context.Context, userID uuid.UUID) (*models.Clinic, error)
	UpdateMyClinic(ctx context.Context, userID uuid.UUID, req *models.CreateClinicRequest) (*models.Clinic, error)

	// CheckPlanLimit reports ErrPlanLimitExceeded when one more action would
	// exceed the free tier ceiling of clinicID.
	CheckPlanLimit(ctx context.Context, clinicID uuid.UUID, action models.PlanAction) error
	// WithinPlanLimit runs write under the tenant lock once the quota allows it
	WithinPlanLimit(ctx context.Context, clinicID uuid.UUID, action models.PlanAction, write func(tx ClinicTx) error) error

	CreatePatient(ctx context.Context, userID uuid.UUID, req *models.CreatePatientRequest) (*models.Patient, error)
	CreateStaff(ctx context.Context, userID uuid.UUID, req *models.CreateStaffRequest) (*models.User, error)
	CreateAppointment(ctx context.Context, userID uuid.UUID, req *models.CreateAppointmentRequest) (*models.Appointment, error)
}
