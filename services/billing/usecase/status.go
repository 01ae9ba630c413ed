package usecase

import (
	"context"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// GetBillingStatus summarizes the caller's clinic plan and last settled payment
func (uc *BillingUC) GetBillingStatus(ctx context.Context, userID uuid.UUID) (*models.BillingStatus, error) {
	clinicID, err := uc.billingClinic(ctx, userID)
	if err != nil {
		return nil, err
	}

	sub, err := uc.billingRepo.GetSubscriptionByClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	payment, err := uc.billingRepo.GetLatestSuccessfulPayment(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	status := &models.BillingStatus{
		Plan:   "Free",
		Tier:   models.PlanTierBasic,
		Status: models.SubscriptionExpired,
	}
	if sub != nil {
		expiresAt := sub.EndDate.Format(dateLayout)
		status.Plan = sub.Plan.Name
		status.Tier = sub.Plan.Tier
		status.Status = sub.Status
		status.PlanExpiresAt = &expiresAt
	}
	if payment != nil {
		status.InvoiceID = payment.InvoiceID
		status.ReferenceID = payment.ReferenceID
	}
	return status, nil
}
