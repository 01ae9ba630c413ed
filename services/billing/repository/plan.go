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

// GetPlanByID loads a plan definition
func (r *BillingRepo) GetPlanByID(ctx context.Context, id uuid.UUID) (*models.Plan, error) {
	query := `SELECT id, name, tier, monthly_price, max_staff, max_patients FROM plans WHERE id = $1`

	var plan models.Plan
	if err := r.db.GetContext(ctx, &plan, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return &plan, nil
}

// GetUserByID loads the caller to check role and clinic
func (r *BillingRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT id, username, email, phone_number, role, clinic_id, is_active, created_at, updated_at
		FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrForbidden
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
