package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/clinic"
	"github.com/google/uuid"
)

const clinicColumns = `id, name, code, owner_id, phone, email, address, timezone, is_active, created_at, updated_at`

// GetUserByID loads the caller with role and clinic
func (r *ClinicRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT id, username, email, phone_number, role, clinic_id, is_active, created_at, updated_at
		FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, clinic.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetClinicByID loads a clinic
func (r *ClinicRepo) GetClinicByID(ctx context.Context, id uuid.UUID) (*models.Clinic, error) {
	query := `SELECT ` + clinicColumns + ` FROM clinics WHERE id = $1`

	var c models.Clinic
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, clinic.ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}
	return &c, nil
}

// CreateClinic inserts c and attaches its owner to it. Admins keep their role,
// everyone else becomes CLINIC_OWNER. An owner that already joined a clinic
// in the meantime aborts the insert.
func (r *ClinicRepo) CreateClinic(ctx context.Context, c *models.Clinic) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO clinics (` + clinicColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		c.ID,
		c.Name,
		c.Code,
		c.OwnerID,
		c.Phone,
		c.Email,
		c.Address,
		c.Timezone,
		c.IsActive,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: clinic code %q", clinic.ErrDuplicate, c.Code)
		}
		return fmt.Errorf("failed to insert clinic: %w", err)
	}

	promoteQuery := `
		UPDATE users
		SET clinic_id = $1,
			role = CASE WHEN role = 'ADMIN' THEN role ELSE 'CLINIC_OWNER' END,
			updated_at = $2
		WHERE id = $3 AND clinic_id IS NULL
	`
	result, err := tx.ExecContext(ctx, promoteQuery, c.ID, c.UpdatedAt, c.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to assign clinic owner: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return clinic.ErrClinicAssigned
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateClinic saves the editable clinic profile fields
func (r *ClinicRepo) UpdateClinic(ctx context.Context, c *models.Clinic) error {
	query := `
		UPDATE clinics
		SET name = $2, phone = $3, email = $4, address = $5, timezone = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Phone,
		c.Email,
		c.Address,
		c.Timezone,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update clinic: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return clinic.ErrClinicNotFound
	}
	return nil
}
