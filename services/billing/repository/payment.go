package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/billing"
	"github.com/google/uuid"
)

const paymentColumns = `id, clinic_id, plan_id, reference_id, invoice_id, checkout_url, transaction_id,
		amount, currency, status, metadata, paid_at, created_at, updated_at`

// CreatePayment stores a new checkout attempt
func (r *BillingRepo) CreatePayment(ctx context.Context, payment *models.BillingPayment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}

	query := `
		INSERT INTO billing_payments (id, clinic_id, plan_id, reference_id, invoice_id, checkout_url,
			transaction_id, amount, currency, status, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.ClinicID,
		payment.PlanID,
		payment.ReferenceID,
		payment.InvoiceID,
		payment.CheckoutURL,
		payment.TransactionID,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.Metadata,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// GetPaymentByReference finds a payment by the reference sent to the gateway
func (r *BillingRepo) GetPaymentByReference(ctx context.Context, referenceID string) (*models.BillingPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM billing_payments WHERE reference_id = $1`

	var payment models.BillingPayment
	if err := r.db.GetContext(ctx, &payment, query, referenceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// MarkPaymentFailed records a non-success callback. A payment that already
// succeeded is left untouched.
func (r *BillingRepo) MarkPaymentFailed(ctx context.Context, id uuid.UUID, metadata models.Metadata) error {
	query := `
		UPDATE billing_payments
		SET status = 'FAILED', metadata = metadata || $2::jsonb, updated_at = NOW()
		WHERE id = $1 AND status <> 'SUCCESS'
	`
	if _, err := r.db.ExecContext(ctx, query, id, metadata); err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}
	return nil
}

// ConfirmPayment locks the payment row, re-checks it and, unless another
// callback got there first, marks it SUCCESS and upserts the subscription.
func (r *BillingRepo) ConfirmPayment(
	ctx context.Context,
	id uuid.UUID,
	confirmation *models.PaymentConfirmation,
	activation *models.SubscriptionActivation,
) (*models.BillingPayment, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var payment models.BillingPayment
	lockQuery := `SELECT ` + paymentColumns + ` FROM billing_payments WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &payment, lockQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, billing.ErrPaymentNotFound
		}
		return nil, false, fmt.Errorf("failed to lock payment: %w", err)
	}

	if payment.Status == models.PaymentSuccess {
		return &payment, true, nil
	}

	updateQuery := `
		UPDATE billing_payments
		SET status = 'SUCCESS', transaction_id = $2, invoice_id = $3,
			metadata = metadata || $4::jsonb, paid_at = $5, updated_at = $5
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, updateQuery,
		id,
		confirmation.TransactionID,
		confirmation.InvoiceID,
		confirmation.Metadata,
		confirmation.PaidAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to confirm payment: %w", err)
	}

	upsertQuery := `
		INSERT INTO subscriptions (id, clinic_id, plan_id, status, start_date, end_date, auto_renew)
		VALUES ($1, $2, $3, 'ACTIVE', $4, $5, true)
		ON CONFLICT (clinic_id) DO UPDATE
		SET plan_id = EXCLUDED.plan_id, status = EXCLUDED.status,
			start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date
	`
	_, err = tx.ExecContext(ctx, upsertQuery,
		uuid.New(),
		activation.ClinicID,
		activation.PlanID,
		activation.StartDate,
		activation.EndDate,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to activate subscription: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	payment.Status = models.PaymentSuccess
	payment.TransactionID = confirmation.TransactionID
	payment.InvoiceID = confirmation.InvoiceID
	paidAt := confirmation.PaidAt
	payment.PaidAt = &paidAt
	return &payment, false, nil
}

// GetLatestSuccessfulPayment returns the most recent paid checkout of a clinic, or nil
func (r *BillingRepo) GetLatestSuccessfulPayment(ctx context.Context, clinicID uuid.UUID) (*models.BillingPayment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM billing_payments
		WHERE clinic_id = $1 AND status = 'SUCCESS'
		ORDER BY paid_at DESC NULLS LAST, created_at DESC
		LIMIT 1
	`

	var payment models.BillingPayment
	if err := r.db.GetContext(ctx, &payment, query, clinicID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest payment: %w", err)
	}
	return &payment, nil
}
