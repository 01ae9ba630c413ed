package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// PlanTier orders plans; BASIC is the free base tier
type PlanTier string

const (
	PlanTierBasic    PlanTier = "BASIC"
	PlanTierStandard PlanTier = "STANDARD"
	PlanTierPremium  PlanTier = "PREMIUM"
)

// Plan is a static tier definition. Prices are integer minor units of the
// gateway currency (whole Rials for IRR).
type Plan struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Tier         PlanTier  `json:"tier" db:"tier"`
	MonthlyPrice int64     `json:"monthly_price" db:"monthly_price"`
	MaxStaff     int       `json:"max_staff" db:"max_staff"`
	MaxPatients  int       `json:"max_patients" db:"max_patients"`
}

// SubscriptionStatus is the state of a clinic subscription
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionTrial     SubscriptionStatus = "TRIAL"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
)

// Subscription links a clinic to a plan. One per clinic.
type Subscription struct {
	ID        uuid.UUID          `json:"id" db:"id"`
	ClinicID  uuid.UUID          `json:"clinic_id" db:"clinic_id"`
	PlanID    uuid.UUID          `json:"plan_id" db:"plan_id"`
	Status    SubscriptionStatus `json:"status" db:"status"`
	StartDate time.Time          `json:"start_date" db:"start_date"`
	EndDate   time.Time          `json:"end_date" db:"end_date"`
	AutoRenew bool               `json:"auto_renew" db:"auto_renew"`
}

// SubscriptionWithPlan is a subscription joined with its plan
type SubscriptionWithPlan struct {
	Subscription
	Plan Plan `db:"plan"`
}

// IsPaid reports whether the subscription lifts free tier ceilings.
// All three conditions are required.
func (s *SubscriptionWithPlan) IsPaid() bool {
	if s == nil {
		return false
	}
	if s.Status != SubscriptionActive && s.Status != SubscriptionTrial {
		return false
	}
	return s.Plan.Tier != PlanTierBasic && s.Plan.MonthlyPrice > 0
}

// SubscriptionActivation is the upsert applied when a payment succeeds
type SubscriptionActivation struct {
	ClinicID  uuid.UUID
	PlanID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// PaymentStatus is the state of a checkout attempt
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Metadata is free-form gateway data kept in a JSONB column
type Metadata map[string]interface{}

// Value implements driver.Valuer
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (m *Metadata) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported metadata type")
	}
	out := Metadata{}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*m = out
	return nil
}

// BillingPayment is one checkout attempt. SUCCESS is terminal.
type BillingPayment struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	ClinicID      uuid.UUID     `json:"clinic_id" db:"clinic_id"`
	PlanID        uuid.UUID     `json:"plan_id" db:"plan_id"`
	ReferenceID   string        `json:"reference_id" db:"reference_id"`
	InvoiceID     string        `json:"invoice_id" db:"invoice_id"`
	CheckoutURL   string        `json:"checkout_url" db:"checkout_url"`
	TransactionID string        `json:"transaction_id" db:"transaction_id"`
	Amount        int64         `json:"amount" db:"amount"`
	Currency      string        `json:"currency" db:"currency"`
	Status        PaymentStatus `json:"status" db:"status"`
	Metadata      Metadata      `json:"metadata" db:"metadata"`
	PaidAt        *time.Time    `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// PaymentConfirmation is what a success callback writes onto a payment
type PaymentConfirmation struct {
	TransactionID string
	InvoiceID     string
	Metadata      Metadata
	PaidAt        time.Time
}

// PlanAction names a metered write
type PlanAction string

const (
	ActionCreateStaff       PlanAction = "CREATE_STAFF"
	ActionCreatePatient     PlanAction = "CREATE_PATIENT"
	ActionCreateAppointment PlanAction = "CREATE_APPOINTMENT"
)

// CheckoutRequest starts a plan purchase
type CheckoutRequest struct {
	PlanID   uuid.UUID `json:"plan_id"`
	Currency string    `json:"currency"`
}

// CheckoutResponse is returned once the gateway created an invoice
type CheckoutResponse struct {
	InvoiceID   string        `json:"invoice_id"`
	ReferenceID string        `json:"reference_id"`
	CheckoutURL string        `json:"checkout_url"`
	Amount      int64         `json:"amount"`
	Currency    string        `json:"currency"`
	Status      PaymentStatus `json:"status"`
}

// Invoice is the gateway's answer to an invoice request
type Invoice struct {
	InvoiceID   string
	CheckoutURL string
	Raw         Metadata
}

// InvoiceRequest is sent to the gateway to open a checkout
type InvoiceRequest struct {
	Amount      int64
	Currency    string
	ReferenceID string
	ClinicID    uuid.UUID
	PlanID      uuid.UUID
}

// WebhookNotification is a normalized gateway callback
type WebhookNotification struct {
	TransactionID string
	InvoiceID     string
	ReferenceID   string
	Status        string
	Raw           Metadata
}

// TransactionVerification is the gateway's answer to a verify round-trip
type TransactionVerification struct {
	Status      string
	ReferenceID string
	Raw         Metadata
}

// WebhookOutcome is the detail reported back to the gateway
type WebhookOutcome string

const (
	WebhookOK               WebhookOutcome = "ok"
	WebhookAlreadyProcessed WebhookOutcome = "already_processed"
	WebhookIgnoredStatus    WebhookOutcome = "ignored_status"
)

// BillingStatus summarizes a clinic's current plan
type BillingStatus struct {
	Plan          string             `json:"plan"`
	Tier          PlanTier           `json:"tier"`
	Status        SubscriptionStatus `json:"status"`
	PlanExpiresAt *string            `json:"plan_expires_at"`
	InvoiceID     string             `json:"invoice_id"`
	ReferenceID   string             `json:"reference_id"`
}

// SubscriptionActivatedEvent is published after a payment activates a plan
type SubscriptionActivatedEvent struct {
	ClinicID    uuid.UUID `json:"clinic_id"`
	PlanID      uuid.UUID `json:"plan_id"`
	PaymentID   uuid.UUID `json:"payment_id"`
	ReferenceID string    `json:"reference_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	ActivatedAt time.Time `json:"activated_at"`
}
