package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/billing"
)

var successStatuses = map[string]bool{
	"SUCCESS":   true,
	"CONFIRMED": true,
	"PAID":      true,
	"COMPLETED": true,
	"COMPLETE":  true,
	"1":         true,
}

// IsSuccessStatus reports whether a gateway status settles a payment
func IsSuccessStatus(status string) bool {
	return successStatuses[strings.ToUpper(strings.TrimSpace(status))]
}

// HandleWebhook reconciles an authenticated gateway callback. A payment is
// activated at most once however often the callback is replayed.
func (uc *BillingUC) HandleWebhook(ctx context.Context, n *models.WebhookNotification) (models.WebhookOutcome, error) {
	outcome, err := uc.handleWebhook(ctx, n)
	if err != nil {
		uc.metrics.WebhookHandled("error")
		return "", err
	}
	uc.metrics.WebhookHandled(string(outcome))
	return outcome, nil
}

func (uc *BillingUC) handleWebhook(ctx context.Context, n *models.WebhookNotification) (models.WebhookOutcome, error) {
	if n == nil || strings.TrimSpace(n.ReferenceID) == "" {
		return "", billing.ErrMissingReference
	}
	referenceID := strings.TrimSpace(n.ReferenceID)

	payment, err := uc.billingRepo.GetPaymentByReference(ctx, referenceID)
	if err != nil {
		return "", err
	}
	if payment.Status == models.PaymentSuccess {
		logger.Info("Webhook replay for settled payment", logger.String("reference_id", referenceID))
		return models.WebhookAlreadyProcessed, nil
	}

	if uc.gatewayCfg.APIKey == "" || uc.gatewayCfg.VerifyURL == "" {
		logger.Error("Webhook received but payment gateway verification is not configured",
			logger.String("reference_id", referenceID))
		return "", billing.ErrGatewayNotConfigured
	}

	invoiceID := n.InvoiceID
	if invoiceID == "" {
		invoiceID = payment.InvoiceID
	}

	verification, err := uc.billingGW.VerifyTransaction(ctx, n.TransactionID, invoiceID)
	if err != nil {
		logger.Error("Gateway verification failed",
			logger.String("reference_id", referenceID),
			logger.ErrorField(err))
		return "", fmt.Errorf("%w: %v", billing.ErrGateway, err)
	}
	if verification.ReferenceID != "" && verification.ReferenceID != referenceID {
		logger.Warn("Verified reference does not match callback",
			logger.String("reference_id", referenceID),
			logger.String("verified_reference_id", verification.ReferenceID))
		return "", billing.ErrReferenceMismatch
	}

	if n.Status != "" && !strings.EqualFold(strings.TrimSpace(n.Status), strings.TrimSpace(verification.Status)) {
		logger.Warn("Callback status differs from verified status",
			logger.String("reference_id", referenceID),
			logger.String("callback_status", n.Status),
			logger.String("verified_status", verification.Status))
	}

	metadata := mergeMetadata(n.Raw, verification.Raw)
	if !IsSuccessStatus(verification.Status) {
		if err := uc.billingRepo.MarkPaymentFailed(ctx, payment.ID, metadata); err != nil {
			return "", err
		}
		logger.Info("Payment marked failed",
			logger.String("reference_id", referenceID),
			logger.String("status", verification.Status))
		return models.WebhookIgnoredStatus, nil
	}

	now := uc.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	activation := &models.SubscriptionActivation{
		ClinicID:  payment.ClinicID,
		PlanID:    payment.PlanID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, subscriptionPeriodDays),
	}
	confirmed, alreadyProcessed, err := uc.billingRepo.ConfirmPayment(ctx, payment.ID, &models.PaymentConfirmation{
		TransactionID: n.TransactionID,
		InvoiceID:     invoiceID,
		Metadata:      metadata,
		PaidAt:        now,
	}, activation)
	if err != nil {
		return "", err
	}
	if alreadyProcessed {
		logger.Info("Concurrent callback settled payment first", logger.String("reference_id", referenceID))
		return models.WebhookAlreadyProcessed, nil
	}

	logger.Info("Payment settled and subscription activated",
		logger.String("reference_id", referenceID),
		logger.String("clinic_id", payment.ClinicID.String()),
		logger.String("plan_id", payment.PlanID.String()))

	event := &models.SubscriptionActivatedEvent{
		ClinicID:    confirmed.ClinicID,
		PlanID:      confirmed.PlanID,
		PaymentID:   confirmed.ID,
		ReferenceID: confirmed.ReferenceID,
		StartDate:   activation.StartDate.Format(dateLayout),
		EndDate:     activation.EndDate.Format(dateLayout),
		ActivatedAt: now,
	}
	if err := uc.billingGW.PublishSubscriptionActivated(ctx, event); err != nil {
		logger.Warn("Failed to publish subscription activation",
			logger.String("reference_id", referenceID),
			logger.ErrorField(err))
	}

	return models.WebhookOK, nil
}

// mergeMetadata layers the verification answer over the callback payload
func mergeMetadata(callback, verification models.Metadata) models.Metadata {
	out := models.Metadata{}
	for k, v := range callback {
		out[k] = v
	}
	for k, v := range verification {
		out[k] = v
	}
	return out
}
