package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/internal/utils"
	"github.com/codermehran/Mo/services/clinic"
	"github.com/google/uuid"
)

// CreatePatient registers a patient at the caller's clinic within the plan quota
func (uc *ClinicUC) CreatePatient(ctx context.Context, userID uuid.UUID, req *models.CreatePatientRequest) (*models.Patient, error) {
	clinicID, err := uc.memberClinic(ctx, userID, models.CapManagePatients)
	if err != nil {
		return nil, err
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: first_name and last_name are required", clinic.ErrInvalidPatient)
	}
	phone := ""
	if strings.TrimSpace(req.PhoneNumber) != "" {
		if phone, err = utils.NormalizePhoneNumber(req.PhoneNumber); err != nil {
			return nil, fmt.Errorf("%w: %v", clinic.ErrInvalidPatient, err)
		}
	}

	patient := &models.Patient{
		ID:          uuid.New(),
		ClinicID:    clinicID,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phone,
		BirthDate:   req.BirthDate,
		Notes:       req.Notes,
		CreatedAt:   uc.now(),
	}
	err = uc.WithinPlanLimit(ctx, clinicID, models.ActionCreatePatient, func(tx clinic.ClinicTx) error {
		return tx.CreatePatient(ctx, patient)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Patient created",
		logger.String("clinic_id", clinicID.String()),
		logger.String("patient_id", patient.ID.String()))
	return patient, nil
}

// CreateStaff adds a practitioner or staff account to the caller's clinic within the plan quota
func (uc *ClinicUC) CreateStaff(ctx context.Context, userID uuid.UUID, req *models.CreateStaffRequest) (*models.User, error) {
	clinicID, err := uc.memberClinic(ctx, userID, models.CapManageStaff)
	if err != nil {
		return nil, err
	}

	if !req.Role.IsStaff() {
		return nil, fmt.Errorf("%w: role must be PRACTITIONER or STAFF", clinic.ErrInvalidStaff)
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", clinic.ErrInvalidStaff)
	}
	phone, err := utils.NormalizePhoneNumber(req.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", clinic.ErrInvalidStaff, err)
	}

	now := uc.now()
	member := &models.User{
		ID:          uuid.New(),
		Username:    username,
		Email:       req.Email,
		PhoneNumber: phone,
		Role:        req.Role,
		ClinicID:    &clinicID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.WithinPlanLimit(ctx, clinicID, models.ActionCreateStaff, func(tx clinic.ClinicTx) error {
		return tx.CreateStaff(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Staff member created",
		logger.String("clinic_id", clinicID.String()),
		logger.String("user_id", member.ID.String()),
		logger.String("role", string(member.Role)),
		logger.Phone("phone", phone))
	return member, nil
}

// CreateAppointment books a patient of the caller's clinic within the plan quota
func (uc *ClinicUC) CreateAppointment(ctx context.Context, userID uuid.UUID, req *models.CreateAppointmentRequest) (*models.Appointment, error) {
	clinicID, err := uc.memberClinic(ctx, userID, models.CapManageAppointments)
	if err != nil {
		return nil, err
	}

	if req.PatientID == uuid.Nil {
		return nil, fmt.Errorf("%w: patient_id is required", clinic.ErrInvalidAppointment)
	}
	if req.StartTime.IsZero() || !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", clinic.ErrInvalidAppointment)
	}

	appointment := &models.Appointment{
		ID:             uuid.New(),
		ClinicID:       clinicID,
		PatientID:      req.PatientID,
		PractitionerID: req.PractitionerID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         models.AppointmentScheduled,
		Notes:          req.Notes,
		CreatedAt:      uc.now(),
	}
	err = uc.WithinPlanLimit(ctx, clinicID, models.ActionCreateAppointment, func(tx clinic.ClinicTx) error {
		ok, err := tx.PatientInClinic(ctx, clinicID, req.PatientID)
		if err != nil {
			return err
		}
		if !ok {
			return clinic.ErrPatientNotFound
		}
		if req.PractitionerID != nil {
			ok, err := tx.PractitionerInClinic(ctx, clinicID, *req.PractitionerID)
			if err != nil {
				return err
			}
			if !ok {
				return clinic.ErrPractitionerNotFound
			}
		}
		return tx.CreateAppointment(ctx, appointment)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Appointment created",
		logger.String("clinic_id", clinicID.String()),
		logger.String("appointment_id", appointment.ID.String()))
	return appointment, nil
}
