package clinic

import "errors"

var (
	ErrPlanLimitExceeded = errors.New("plan limit exceeded")

	ErrForbidden      = errors.New("permission denied")
	ErrSetupRequired  = errors.New("clinic setup required")
	ErrClinicAssigned = errors.New("clinic already assigned")
	ErrClinicNotFound = errors.New("clinic not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicate      = errors.New("resource already exists")

	ErrInvalidClinic        = errors.New("invalid clinic")
	ErrInvalidPatient       = errors.New("invalid patient")
	ErrInvalidStaff         = errors.New("invalid staff member")
	ErrInvalidAppointment   = errors.New("invalid appointment")
	ErrPatientNotFound      = errors.New("patient not found in clinic")
	ErrPractitionerNotFound = errors.New("practitioner not found in clinic")
)
