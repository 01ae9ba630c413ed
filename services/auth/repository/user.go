package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/auth"
	"github.com/google/uuid"
)

const userColumns = `id, username, email, phone_number, role, clinic_id, is_active, created_at, updated_at`

// FindUsersByPhone returns at most limit users registered with phone
func (r *AuthRepo) FindUsersByPhone(ctx context.Context, phone string, limit int) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone_number = $1 ORDER BY created_at LIMIT $2`

	var users []*models.User
	if err := r.db.SelectContext(ctx, &users, query, phone, limit); err != nil {
		return nil, fmt.Errorf("failed to find users by phone: %w", err)
	}
	return users, nil
}

// GetUserByID loads a user with its current role and clinic
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
