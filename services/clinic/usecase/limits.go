package usecase

import (
	"context"
	"fmt"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/clinic"
	"github.com/google/uuid"
)

// CheckPlanLimit evaluates the quota of clinicID for action under the tenant lock
func (uc *ClinicUC) CheckPlanLimit(ctx context.Context, clinicID uuid.UUID, action models.PlanAction) error {
	return uc.clinicRepo.WithTenantLock(ctx, clinicID, func(tx clinic.ClinicTx) error {
		return uc.checkQuota(ctx, tx, clinicID, action)
	})
}

// WithinPlanLimit holds the tenant lock across the quota check and write, so
// two writers at quota-1 cannot both pass.
func (uc *ClinicUC) WithinPlanLimit(ctx context.Context, clinicID uuid.UUID, action models.PlanAction, write func(tx clinic.ClinicTx) error) error {
	return uc.clinicRepo.WithTenantLock(ctx, clinicID, func(tx clinic.ClinicTx) error {
		if err := uc.checkQuota(ctx, tx, clinicID, action); err != nil {
			return err
		}
		return write(tx)
	})
}

func (uc *ClinicUC) checkQuota(ctx context.Context, tx clinic.ClinicTx, clinicID uuid.UUID, action models.PlanAction) error {
	sub, err := tx.GetSubscription(ctx, clinicID)
	if err != nil {
		return err
	}
	if sub.IsPaid() {
		return nil
	}

	ceiling := uc.ceiling(action)
	if ceiling <= 0 {
		return nil
	}

	count, err := tx.CountResource(ctx, clinicID, action)
	if err != nil {
		return err
	}
	if count >= ceiling {
		uc.metrics.PlanLimitRejected(string(action))
		logger.Info("Free plan limit reached",
			logger.String("clinic_id", clinicID.String()),
			logger.String("action", string(action)),
			logger.Int("count", count),
			logger.Int("ceiling", ceiling))
		return fmt.Errorf("%w: %s at %d of %d", clinic.ErrPlanLimitExceeded, action, count, ceiling)
	}
	return nil
}

// ceiling is the free tier maximum for action, 0 when unlimited or unmetered
func (uc *ClinicUC) ceiling(action models.PlanAction) int {
	switch action {
	case models.ActionCreateStaff:
		return uc.limits.FreeMaxStaff
	case models.ActionCreatePatient:
		return uc.limits.FreeMaxPatients
	case models.ActionCreateAppointment:
		return uc.limits.FreeMaxAppointments
	}
	return 0
}
