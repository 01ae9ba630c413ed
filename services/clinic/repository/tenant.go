package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/clinic"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// WithTenantLock serializes metered writes of one clinic on its row lock.
// The lock is held until fn returns and the transaction ends.
func (r *ClinicRepo) WithTenantLock(ctx context.Context, clinicID uuid.UUID, fn func(tx clinic.ClinicTx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var lockedID uuid.UUID
	if err := tx.GetContext(ctx, &lockedID, `SELECT id FROM clinics WHERE id = $1 FOR UPDATE`, clinicID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return clinic.ErrClinicNotFound
		}
		return fmt.Errorf("failed to lock clinic: %w", err)
	}

	if err := fn(&tenantTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// tenantTx runs queries on the transaction holding the tenant lock
type tenantTx struct {
	tx *sqlx.Tx
}

// GetSubscription returns the clinic subscription joined with its plan, or nil
func (t *tenantTx) GetSubscription(ctx context.Context, clinicID uuid.UUID) (*models.SubscriptionWithPlan, error) {
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
	if err := t.tx.GetContext(ctx, &sub, query, clinicID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &sub, nil
}

var countQueries = map[models.PlanAction]string{
	models.ActionCreateStaff:       `SELECT COUNT(*) FROM users WHERE clinic_id = $1 AND role IN ('PRACTITIONER', 'STAFF')`,
	models.ActionCreatePatient:     `SELECT COUNT(*) FROM patients WHERE clinic_id = $1`,
	models.ActionCreateAppointment: `SELECT COUNT(*) FROM appointments WHERE clinic_id = $1`,
}

// CountResource counts the rows an action is metered against. Unknown actions count 0.
func (t *tenantTx) CountResource(ctx context.Context, clinicID uuid.UUID, action models.PlanAction) (int, error) {
	query, ok := countQueries[action]
	if !ok {
		return 0, nil
	}

	var count int
	if err := t.tx.GetContext(ctx, &count, query, clinicID); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", action, err)
	}
	return count, nil
}

// PatientInClinic reports whether patientID is registered at clinicID
func (t *tenantTx) PatientInClinic(ctx context.Context, clinicID, patientID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM patients WHERE id = $1 AND clinic_id = $2)`
	if err := t.tx.GetContext(ctx, &exists, query, patientID, clinicID); err != nil {
		return false, fmt.Errorf("failed to check patient: %w", err)
	}
	return exists, nil
}

// PractitionerInClinic reports whether userID is a practitioner of clinicID
func (t *tenantTx) PractitionerInClinic(ctx context.Context, clinicID, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND clinic_id = $2 AND role = 'PRACTITIONER')`
	if err := t.tx.GetContext(ctx, &exists, query, userID, clinicID); err != nil {
		return false, fmt.Errorf("failed to check practitioner: %w", err)
	}
	return exists, nil
}

// CreatePatient inserts a patient
func (t *tenantTx) CreatePatient(ctx context.Context, p *models.Patient) error {
	query := `
		INSERT INTO patients (id, clinic_id, first_name, last_name, phone_number, birth_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := t.tx.ExecContext(ctx, query,
		p.ID,
		p.ClinicID,
		p.FirstName,
		p.LastName,
		p.PhoneNumber,
		p.BirthDate,
		p.Notes,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert patient: %w", err)
	}
	return nil
}

// CreateStaff inserts a practitioner or staff account
func (t *tenantTx) CreateStaff(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (id, username, email, phone_number, role, clinic_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := t.tx.ExecContext(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.PhoneNumber,
		u.Role,
		u.ClinicID,
		u.IsActive,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %q", clinic.ErrDuplicate, u.Username)
		}
		return fmt.Errorf("failed to insert staff: %w", err)
	}
	return nil
}

// CreateAppointment inserts an appointment
func (t *tenantTx) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	query := `
		INSERT INTO appointments (id, clinic_id, patient_id, practitioner_id, start_time, end_time, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := t.tx.ExecContext(ctx, query,
		a.ID,
		a.ClinicID,
		a.PatientID,
		a.PractitionerID,
		a.StartTime,
		a.EndTime,
		a.Status,
		a.Notes,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}
