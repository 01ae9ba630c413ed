package billing

import (
	"context"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/codermehran/Mo/services/billing BillingRepo

// BillingRepo persists plans, payments and subscriptions
type BillingRepo interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetPlanByID(ctx context.Context, id uuid.UUID) (*models.Plan, error)

	CreatePayment(ctx context.Context, payment *models.BillingPayment) error
	GetPaymentByReference(ctx context.Context, referenceID string) (*models.BillingPayment, error)
	MarkPaymentFailed(ctx context.Context, id uuid.UUID, metadata models.Metadata) error
	// ConfirmPayment marks the payment successful and activates the subscription
	// in one transaction. alreadyProcessed is true when the locked row was
	// already SUCCESS.
	ConfirmPayment(ctx context.Context, id uuid.UUID, confirmation *models.PaymentConfirmation, activation *models.SubscriptionActivation) (payment *models.BillingPayment, alreadyProcessed bool, err error)

	GetSubscriptionByClinic(ctx context.Context, clinicID uuid.UUID) (*models.SubscriptionWithPlan, error)
	GetLatestSuccessfulPayment(ctx context.Context, clinicID uuid.UUID) (*models.BillingPayment, error)
}
