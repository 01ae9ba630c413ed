package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level of a user inside a clinic
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleClinicOwner  Role = "CLINIC_OWNER"
	RolePractitioner Role = "PRACTITIONER"
	RoleStaff        Role = "STAFF"
	RolePatient      Role = "PATIENT"
)

// IsStaff reports whether the role counts against the staff quota
func (r Role) IsStaff() bool {
	return r == RolePractitioner || r == RoleStaff
}

// User represents an account that can sign in with an OTP
type User struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Username    string     `json:"username" db:"username"`
	Email       *string    `json:"email,omitempty" db:"email"`
	PhoneNumber string     `json:"phone_number" db:"phone_number"`
	Role        Role       `json:"role" db:"role"`
	ClinicID    *uuid.UUID `json:"clinic_id,omitempty" db:"clinic_id"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// RequiresSetup reports whether the user still has to create or join a clinic
func (u *User) RequiresSetup() bool {
	return u.ClinicID == nil
}

// Capability names an action guarded by role
type Capability string

const (
	CapManageClinic       Capability = "manage_clinic"
	CapManageBilling      Capability = "manage_billing"
	CapManageStaff        Capability = "manage_staff"
	CapManagePatients     Capability = "manage_patients"
	CapManageAppointments Capability = "manage_appointments"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleClinicOwner: {
		CapManageClinic:       true,
		CapManageBilling:      true,
		CapManageStaff:        true,
		CapManagePatients:     true,
		CapManageAppointments: true,
	},
	RolePractitioner: {
		CapManagePatients:     true,
		CapManageAppointments: true,
	},
	RoleStaff: {
		CapManagePatients:     true,
		CapManageAppointments: true,
	},
}

// Can reports whether user may perform capability on resources owned by clinicID.
// Admins pass everywhere; everyone else must belong to that clinic.
func Can(user *User, capability Capability, clinicID uuid.UUID) bool {
	if user == nil {
		return false
	}
	if user.Role == RoleAdmin {
		return true
	}
	if user.ClinicID == nil || *user.ClinicID != clinicID {
		return false
	}
	return roleCapabilities[user.Role][capability]
}
