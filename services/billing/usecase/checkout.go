package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/billing"
	"github.com/google/uuid"
)

// CreateCheckout opens a gateway invoice for plan and stores a PENDING payment
func (uc *BillingUC) CreateCheckout(ctx context.Context, userID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	clinicID, err := uc.billingClinic(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req == nil || req.PlanID == uuid.Nil {
		return nil, fmt.Errorf("%w: plan_id is required", billing.ErrInvalidCheckout)
	}

	plan, err := uc.getPlan(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if plan.MonthlyPrice <= 0 {
		return nil, fmt.Errorf("%w: plan %s is free", billing.ErrInvalidCheckout, plan.Name)
	}

	if uc.gatewayCfg.APIKey == "" {
		logger.Error("Checkout requested but the payment gateway api key is not configured")
		return nil, billing.ErrGatewayNotConfigured
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = uc.gatewayCfg.Currency
	}
	referenceID := strings.ReplaceAll(uuid.NewString(), "-", "")

	invoice, err := uc.billingGW.CreateInvoice(ctx, &models.InvoiceRequest{
		Amount:      plan.MonthlyPrice,
		Currency:    currency,
		ReferenceID: referenceID,
		ClinicID:    clinicID,
		PlanID:      plan.ID,
	})
	if err != nil {
		logger.Error("Failed to create gateway invoice",
			logger.String("clinic_id", clinicID.String()),
			logger.String("reference_id", referenceID),
			logger.ErrorField(err))
		return nil, fmt.Errorf("%w: %v", billing.ErrGateway, err)
	}

	now := uc.now()
	payment := &models.BillingPayment{
		ClinicID:    clinicID,
		PlanID:      plan.ID,
		ReferenceID: referenceID,
		InvoiceID:   invoice.InvoiceID,
		CheckoutURL: invoice.CheckoutURL,
		Amount:      plan.MonthlyPrice,
		Currency:    currency,
		Status:      models.PaymentPending,
		Metadata:    invoice.Raw,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.billingRepo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to store payment: %w", err)
	}

	logger.Info("Checkout created",
		logger.String("clinic_id", clinicID.String()),
		logger.String("plan", plan.Name),
		logger.String("reference_id", referenceID),
		logger.String("invoice_id", invoice.InvoiceID))

	return &models.CheckoutResponse{
		InvoiceID:   payment.InvoiceID,
		ReferenceID: payment.ReferenceID,
		CheckoutURL: payment.CheckoutURL,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      payment.Status,
	}, nil
}

// billingClinic resolves the clinic the caller may manage billing for
func (uc *BillingUC) billingClinic(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	user, err := uc.billingRepo.GetUserByID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if user.Role != models.RoleClinicOwner && user.Role != models.RoleAdmin {
		return uuid.Nil, billing.ErrForbidden
	}
	if user.ClinicID == nil {
		return uuid.Nil, billing.ErrSetupRequired
	}
	if !models.Can(user, models.CapManageBilling, *user.ClinicID) {
		return uuid.Nil, billing.ErrForbidden
	}
	return *user.ClinicID, nil
}

func (uc *BillingUC) getPlan(ctx context.Context, id uuid.UUID) (*models.Plan, error) {
	if plan, ok := uc.plans.Get(id); ok {
		return plan, nil
	}
	plan, err := uc.billingRepo.GetPlanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.plans.Add(id, plan)
	return plan, nil
}
