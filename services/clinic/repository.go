package clinic

import (
	"context"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/codermehran/Mo/services/clinic ClinicRepo,ClinicTx

// ClinicRepo persists clinics and runs metered writes under a tenant lock
type ClinicRepo interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetClinicByID(ctx context.Context, id uuid.UUID) (*models.Clinic, error)
	// CreateClinic inserts clinic and makes its owner a member in one transaction
	CreateClinic(ctx context.Context, clinic *models.Clinic) error
	UpdateClinic(ctx context.Context, clinic *models.Clinic) error

	// WithTenantLock locks the clinic row and runs fn inside that transaction.
	// fn's error rolls everything back.
	WithTenantLock(ctx context.Context, clinicID uuid.UUID, fn func(tx ClinicTx) error) error
}

// ClinicTx is the work allowed while a tenant is locked
type ClinicTx interface {
	GetSubscription(ctx context.Context, clinicID uuid.UUID) (*models.SubscriptionWithPlan, error)
	CountResource(ctx context.Context, clinicID uuid.UUID, action models.PlanAction) (int, error)

	PatientInClinic(ctx context.Context, clinicID, patientID uuid.UUID) (bool, error)
	PractitionerInClinic(ctx context.Context, clinicID, userID uuid.UUID) (bool, error)

	CreatePatient(ctx context.Context, patient *models.Patient) error
	CreateStaff(ctx context.Context, user *models.User) error
	CreateAppointment(ctx context.Context, appointment *models.Appointment) error
}
