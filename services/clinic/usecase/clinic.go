package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/clinic"
	"github.com/google/uuid"
)

const defaultTimezone = "UTC"

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// CreateClinic sets up a clinic for a caller that has none and makes them its owner
func (uc *ClinicUC) CreateClinic(ctx context.Context, userID uuid.UUID, req *models.CreateClinicRequest) (*models.Clinic, error) {
	user, err := uc.clinicRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ClinicID != nil {
		return nil, clinic.ErrClinicAssigned
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", clinic.ErrInvalidClinic)
	}
	code := slugify(req.Code)
	if code == "" {
		code = slugify(name)
	}
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", clinic.ErrInvalidClinic)
	}
	timezone, err := validTimezone(req.Timezone)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	c := &models.Clinic{
		ID:        uuid.New(),
		Name:      name,
		Code:      code,
		OwnerID:   user.ID,
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Address:   strings.TrimSpace(req.Address),
		Timezone:  timezone,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clinicRepo.CreateClinic(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Clinic created",
		logger.String("clinic_id", c.ID.String()),
		logger.String("owner_id", user.ID.String()),
		logger.String("code", c.Code))
	return c, nil
}

// GetMyClinic returns the caller's clinic
func (uc *ClinicUC) GetMyClinic(ctx context.Context, userID uuid.UUID) (*models.Clinic, error) {
	user, err := uc.clinicRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ClinicID == nil {
		return nil, clinic.ErrSetupRequired
	}
	return uc.clinicRepo.GetClinicByID(ctx, *user.ClinicID)
}

// UpdateMyClinic edits the caller's clinic profile. Empty fields are left unchanged.
func (uc *ClinicUC) UpdateMyClinic(ctx context.Context, userID uuid.UUID, req *models.CreateClinicRequest) (*models.Clinic, error) {
	user, err := uc.clinicRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ClinicID == nil {
		return nil, clinic.ErrSetupRequired
	}
	if !models.Can(user, models.CapManageClinic, *user.ClinicID) {
		return nil, clinic.ErrForbidden
	}

	c, err := uc.clinicRepo.GetClinicByID(ctx, *user.ClinicID)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(req.Name); v != "" {
		c.Name = v
	}
	if v := strings.TrimSpace(req.Phone); v != "" {
		c.Phone = v
	}
	if v := strings.TrimSpace(req.Email); v != "" {
		c.Email = v
	}
	if v := strings.TrimSpace(req.Address); v != "" {
		c.Address = v
	}
	if strings.TrimSpace(req.Timezone) != "" {
		if c.Timezone, err = validTimezone(req.Timezone); err != nil {
			return nil, err
		}
	}
	c.UpdatedAt = uc.now()

	if err := uc.clinicRepo.UpdateClinic(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// memberClinic resolves the caller's clinic and checks capability on it
func (uc *ClinicUC) memberClinic(ctx context.Context, userID uuid.UUID, capability models.Capability) (uuid.UUID, error) {
	user, err := uc.clinicRepo.GetUserByID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if user.ClinicID == nil {
		return uuid.Nil, clinic.ErrSetupRequired
	}
	if !models.Can(user, capability, *user.ClinicID) {
		return uuid.Nil, clinic.ErrForbidden
	}
	return *user.ClinicID, nil
}

func slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-"), "-")
}

func validTimezone(tz string) (string, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return defaultTimezone, nil
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return "", fmt.Errorf("%w: unknown timezone %q", clinic.ErrInvalidClinic, tz)
	}
	return tz, nil
}
