package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/google/uuid"
)

// GetSubscriptionByClinic returns the clinic subscription joined with its plan, or nil
func (r *BillingRepo) GetSubscriptionByClinic(ctx context.Context, clinicID uuid.UUID) (*models.SubscriptionWithPlan, error) {
	query := `
		SELECT s.id, s.clinic_id, s.plan_id, s.status, s.start_date, s.end_date, s.auto_renew,
			p.id AS "plan.id", p.name AS "plan.name", p.tier AS "plan.tier",
			p.monthly_price AS "plan.monthly_price", p.max_staff AS "plan.max_staff",
			p.max_patients AS "plan.max_patients"
		FROM subscriptions s
		JOIN plans p ON p.id = s.plan_id
		WHERE s.clinic_id = $1
	`

	var sub models.SubscriptionWithPlan
	if err := r.db.GetContext(ctx, &sub, query, clinicID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &sub, nil
}
