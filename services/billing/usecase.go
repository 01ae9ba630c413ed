package billing

import (
	"context"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/codermehran/Mo/services/billing BillingUC

// BillingUC covers checkout, gateway callbacks and the billing summary
type BillingUC interface {
	CreateCheckout(ctx context.Context, userID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
	HandleWebhook(ctx context.Context, notification *models.WebhookNotification) (models.WebhookOutcome, error)
	GetBillingStatus(ctx context.Context, userID uuid.UUID) (*models.BillingStatus, error)
}
