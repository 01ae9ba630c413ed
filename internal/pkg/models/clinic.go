package models

import (
	"time"

	"github.com/google/uuid"
)

// Clinic is a tenant. Every metered resource is scoped to one clinic.
type Clinic struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"`
	OwnerID   uuid.UUID `json:"owner_id" db:"owner_id"`
	Phone     string    `json:"phone" db:"phone"`
	Email     string    `json:"email" db:"email"`
	Address   string    `json:"address" db:"address"`
	Timezone  string    `json:"timezone" db:"timezone"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateClinicRequest is the body of the clinic setup call
type CreateClinicRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
}

// Patient belongs to exactly one clinic
type Patient struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ClinicID    uuid.UUID  `json:"clinic_id" db:"clinic_id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	LastName    string     `json:"last_name" db:"last_name"`
	PhoneNumber string     `json:"phone_number" db:"phone_number"`
	BirthDate   *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	Notes       string     `json:"notes" db:"notes"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// CreatePatientRequest is the body of a patient create call
type CreatePatientRequest struct {
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber string     `json:"phone_number"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Notes       string     `json:"notes"`
}

// CreateStaffRequest adds a practitioner or staff member to a clinic
type CreateStaffRequest struct {
	Username    string  `json:"username"`
	PhoneNumber string  `json:"phone_number"`
	Email       *string `json:"email,omitempty"`
	Role        Role    `json:"role"`
}

// AppointmentStatus is the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// Appointment books a patient with an optional practitioner
type Appointment struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	ClinicID       uuid.UUID         `json:"clinic_id" db:"clinic_id"`
	PatientID      uuid.UUID         `json:"patient_id" db:"patient_id"`
	PractitionerID *uuid.UUID        `json:"practitioner_id,omitempty" db:"practitioner_id"`
	StartTime      time.Time         `json:"start_time" db:"start_time"`
	EndTime        time.Time         `json:"end_time" db:"end_time"`
	Status         AppointmentStatus `json:"status" db:"status"`
	Notes          string            `json:"notes" db:"notes"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
}

// CreateAppointmentRequest is the body of an appointment create call
type CreateAppointmentRequest struct {
	PatientID      uuid.UUID  `json:"patient_id"`
	PractitionerID *uuid.UUID `json:"practitioner_id,omitempty"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	Notes          string     `json:"notes"`
}
