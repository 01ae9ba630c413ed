package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/auth"
	"github.com/google/uuid"
)

const otpColumns = `id, user_id, phone_number, purpose, code_hash, ip_address,
		sent_count, attempt_count, created_at, expires_at, is_verified`

// CountOTPByPhoneSince counts codes issued to phone at or after since
func (r *AuthRepo) CountOTPByPhoneSince(ctx context.Context, phone string, since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM otp_requests WHERE phone_number = $1 AND created_at >= $2`
	if err := r.db.GetContext(ctx, &count, query, phone, since); err != nil {
		return 0, fmt.Errorf("failed to count otp requests by phone: %w", err)
	}
	return count, nil
}

// CountOTPByIPSince counts codes requested from ip at or after since
func (r *AuthRepo) CountOTPByIPSince(ctx context.Context, ip string, since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM otp_requests WHERE ip_address = $1 AND created_at >= $2`
	if err := r.db.GetContext(ctx, &count, query, ip, since); err != nil {
		return 0, fmt.Errorf("failed to count otp requests by ip: %w", err)
	}
	return count, nil
}

// CreateOTP persists a new pending code
func (r *AuthRepo) CreateOTP(ctx context.Context, otp *models.OTPRecord) error {
	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}

	query := `
		INSERT INTO otp_requests (id, user_id, phone_number, purpose, code_hash, ip_address,
			sent_count, attempt_count, created_at, expires_at, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		otp.ID,
		otp.UserID,
		otp.PhoneNumber,
		otp.Purpose,
		otp.CodeHash,
		otp.IPAddress,
		otp.SentCount,
		otp.AttemptCount,
		otp.CreatedAt,
		otp.ExpiresAt,
		otp.IsVerified,
	)
	if err != nil {
		return fmt.Errorf("failed to insert otp request: %w", err)
	}
	return nil
}

// DeleteOTP removes a record whose code never reached the user
func (r *AuthRepo) DeleteOTP(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM otp_requests WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete otp request: %w", err)
	}
	return nil
}

// GetLatestPendingOTP returns the newest unverified record for phone and purpose
func (r *AuthRepo) GetLatestPendingOTP(ctx context.Context, phone string, purpose models.OTPPurpose) (*models.OTPRecord, error) {
	query := `
		SELECT ` + otpColumns + `
		FROM otp_requests
		WHERE phone_number = $1 AND purpose = $2 AND is_verified = false
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var otp models.OTPRecord
	if err := r.db.GetContext(ctx, &otp, query, phone, purpose); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNoPendingOTP
		}
		return nil, fmt.Errorf("failed to get pending otp: %w", err)
	}
	return &otp, nil
}

// IncrementOTPAttempts bumps attempt_count in the database and returns the new value
func (r *AuthRepo) IncrementOTPAttempts(ctx context.Context, id uuid.UUID) (int, error) {
	query := `UPDATE otp_requests SET attempt_count = attempt_count + 1 WHERE id = $1 RETURNING attempt_count`

	var attempts int
	if err := r.db.QueryRowxContext(ctx, query, id).Scan(&attempts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, auth.ErrNoPendingOTP
		}
		return 0, fmt.Errorf("failed to increment otp attempts: %w", err)
	}
	return attempts, nil
}

// MarkOTPVerified flips a pending record to verified. It reports false when
// another request already verified it.
func (r *AuthRepo) MarkOTPVerified(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE otp_requests SET is_verified = true WHERE id = $1 AND is_verified = false`, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark otp verified: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}
