package billing

import (
	"context"

	"github.com/codermehran/Mo/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/codermehran/Mo/services/billing BillingGW

// BillingGW talks to the payment gateway and publishes billing events
type BillingGW interface {
	// HTTP gateway
	CreateInvoice(ctx context.Context, req *models.InvoiceRequest) (*models.Invoice, error)
	VerifyTransaction(ctx context.Context, transactionID, invoiceID string) (*models.TransactionVerification, error)

	// NSQ gateway
	PublishSubscriptionActivated(ctx context.Context, event *models.SubscriptionActivatedEvent) error
}
