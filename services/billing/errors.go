package billing

import "errors"

var (
	ErrForbidden       = errors.New("only clinic owners can manage billing")
	ErrSetupRequired   = errors.New("clinic setup required")
	ErrInvalidCheckout = errors.New("invalid checkout request")
	ErrPlanNotFound    = errors.New("plan not found")

	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")
	ErrGateway              = errors.New("payment gateway error")

	ErrMissingReference  = errors.New("missing reference")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrReferenceMismatch = errors.New("verified reference does not match callback")
)
