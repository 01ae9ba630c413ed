package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/codermehran/Mo/internal/pkg/metrics"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/billing/mocks"
)

type billingUCTest struct {
	uc      *BillingUC
	repo    *mocks.MockBillingRepo
	gw      *mocks.MockBillingGW
	metrics *metrics.Metrics
	now     time.Time
}

func setupBillingUC(t *testing.T) *billingUCTest {
	ctrl := gomock.NewController(t)

	cfg := &models.Config{
		Gateway: models.GatewayConfig{
			APIKey:      "gateway-token",
			VerifyURL:   "https://bitpay.ir/payment/gateway-result-second",
			CheckoutURL: "https://bitpay.ir/invoice/",
			Currency:    "IRR",
		},
	}
	repo := mocks.NewMockBillingRepo(ctrl)
	gw := mocks.NewMockBillingGW(ctrl)
	m := metrics.New()

	uc := NewBillingUC(cfg, repo, gw, m)
	now := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	return &billingUCTest{uc: uc, repo: repo, gw: gw, metrics: m, now: now}
}

func clinicOwner() *models.User {
	clinicID := uuid.New()
	return &models.User{
		ID:          uuid.New(),
		Username:    "owner",
		PhoneNumber: "09123456789",
		Role:        models.RoleClinicOwner,
		ClinicID:    &clinicID,
		IsActive:    true,
	}
}

func standardPlan() *models.Plan {
	return &models.Plan{
		ID:           uuid.New(),
		Name:         "Standard",
		Tier:         models.PlanTierStandard,
		MonthlyPrice: 490000,
		MaxStaff:     20,
		MaxPatients:  5000,
	}
}
