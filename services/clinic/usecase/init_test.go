package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/clinic"
	"github.com/codermehran/Mo/services/clinic/mocks"
)

type clinicUCTest struct {
	uc   *ClinicUC
	repo *mocks.MockClinicRepo
	tx   *mocks.MockClinicTx
	now  time.Time
}

func testLimits() models.PlanLimitConfig {
	return models.PlanLimitConfig{
		FreeMaxStaff:        2,
		FreeMaxPatients:     3,
		FreeMaxAppointments: 0,
	}
}

func setupClinicUC(t *testing.T) *clinicUCTest {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockClinicRepo(ctrl)
	tx := mocks.NewMockClinicTx(ctrl)

	uc := NewClinicUC(&models.Config{Limits: testLimits()}, repo, nil)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	return &clinicUCTest{uc: uc, repo: repo, tx: tx, now: now}
}

// expectLock makes WithTenantLock run its callback against the mock transaction
func (s *clinicUCTest) expectLock(clinicID uuid.UUID) {
	s.repo.EXPECT().WithTenantLock(gomock.Any(), clinicID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fn func(clinic.ClinicTx) error) error {
			return fn(s.tx)
		})
}

func memberOf(clinicID uuid.UUID, role models.Role) *models.User {
	return &models.User{
		ID:          uuid.New(),
		Username:    "member",
		PhoneNumber: "09123456789",
		Role:        role,
		ClinicID:    &clinicID,
		IsActive:    true,
	}
}

func paidSubscription(clinicID uuid.UUID) *models.SubscriptionWithPlan {
	return &models.SubscriptionWithPlan{
		Subscription: models.Subscription{ClinicID: clinicID, Status: models.SubscriptionActive},
		Plan:         models.Plan{Name: "Standard", Tier: models.PlanTierStandard, MonthlyPrice: 490000},
	}
}
