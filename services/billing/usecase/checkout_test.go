package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/billing"
)

func TestCreateCheckout(t *testing.T) {
	owner := clinicOwner()
	plan := standardPlan()

	t.Run("Owner opens an invoice", func(t *testing.T) {
		s := setupBillingUC(t)

		s.repo.EXPECT().GetUserByID(gomock.Any(), owner.ID).Return(owner, nil)
		s.repo.EXPECT().GetPlanByID(gomock.Any(), plan.ID).Return(plan, nil)
		s.gw.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *models.InvoiceRequest) (*models.Invoice, error) {
				assert.Equal(t, plan.MonthlyPrice, req.Amount)
				assert.Equal(t, "IRR", req.Currency)
				assert.Equal(t, *owner.ClinicID, req.ClinicID)
				assert.Len(t, req.ReferenceID, 32)
				assert.NotContains(t, req.ReferenceID, "-")
				return &models.Invoice{
					InvoiceID:   "inv-1",
					CheckoutURL: "https://bitpay.ir/invoice/inv-1",
					Raw:         models.Metadata{"id": "inv-1"},
				}, nil
			})
		s.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.BillingPayment) error {
				assert.Equal(t, models.PaymentPending, p.Status)
				assert.Equal(t, "inv-1", p.InvoiceID)
				assert.Equal(t, s.now, p.CreatedAt)
				assert.Equal(t, models.Metadata{"id": "inv-1"}, p.Metadata)
				return nil
			})

		resp, err := s.uc.CreateCheckout(context.Background(), owner.ID, &models.CheckoutRequest{PlanID: plan.ID})

		require.NoError(t, err)
		assert.Equal(t, "inv-1", resp.InvoiceID)
		assert.Equal(t, "https://bitpay.ir/invoice/inv-1", resp.CheckoutURL)
		assert.Equal(t, models.PaymentPending, resp.Status)
		assert.Equal(t, "IRR", resp.Currency)
	})

	t.Run("Plan lookups are cached", func(t *testing.T) {
		s := setupBillingUC(t)

		s.repo.EXPECT().GetUserByID(gomock.Any(), owner.ID).Return(owner, nil).Times(2)
		s.repo.EXPECT().GetPlanByID(gomock.Any(), plan.ID).Return(plan, nil).Times(1)
		s.gw.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			Return(&models.Invoice{InvoiceID: "inv", CheckoutURL: "https://pay/inv"}, nil).Times(2)
		s.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		for i := 0; i < 2; i++ {
			_, err := s.uc.CreateCheckout(context.Background(), owner.ID, &models.CheckoutRequest{PlanID: plan.ID, Currency: "usd"})
			require.NoError(t, err)
		}
	})

	testCases := []struct {
		name      string
		mockSetup func(s *billingUCTest)
		userID    uuid.UUID
		planID    uuid.UUID
		wantErr   error
	}{
		{
			name: "Staff cannot manage billing",
			mockSetup: func(s *billingUCTest) {
				staff := clinicOwner()
				staff.Role = models.RoleStaff
				s.repo.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Return(staff, nil)
			},
			planID:  plan.ID,
			wantErr: billing.ErrForbidden,
		},
		{
			name: "Owner without clinic",
			mockSetup: func(s *billingUCTest) {
				u := clinicOwner()
				u.ClinicID = nil
				s.repo.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Return(u, nil)
			},
			planID:  plan.ID,
			wantErr: billing.ErrSetupRequired,
		},
		{
			name: "Missing plan id",
			mockSetup: func(s *billingUCTest) {
				s.repo.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Return(owner, nil)
			},
			planID:  uuid.Nil,
			wantErr: billing.ErrInvalidCheckout,
		},
		{
			name: "Unknown plan",
			mockSetup: func(s *billingUCTest) {
				s.repo.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Return(owner, nil)
				s.repo.EXPECT().GetPlanByID(gomock.Any(), gomock.Any()).Return(nil, billing.ErrPlanNotFound)
			},
			planID:  uuid.New(),
			wantErr: billing.ErrPlanNotFound,
		},
		{
			name: "Free plan cannot be bought",
			mockSetup: func(s *billingUCTest) {
				free := standardPlan()
				free.Tier = models.PlanTierBasic
				free.MonthlyPrice = 0
				s.repo.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Return(owner, nil)
				s.repo.EXPECT().GetPlanByID(gomock.Any(), gomock.Any()).Return(free, nil)
			},
			planID:  uuid.New(),
			wantErr: billing.ErrInvalidCheckout,
		},
		{
			name: "Gateway not configured",
			mockSetup: func(s *billingUCTest) {
				s.uc.gatewayCfg.APIKey = ""
				s.repo.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Return(owner, nil)
				s.repo.EXPECT().GetPlanByID(gomock.Any(), gomock.Any()).Return(plan, nil)
			},
			planID:  plan.ID,
			wantErr: billing.ErrGatewayNotConfigured,
		},
		{
			name: "Gateway failure stores nothing",
			mockSetup: func(s *billingUCTest) {
				s.repo.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Return(owner, nil)
				s.repo.EXPECT().GetPlanByID(gomock.Any(), gomock.Any()).Return(plan, nil)
				s.gw.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			planID:  plan.ID,
			wantErr: billing.ErrGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := setupBillingUC(t)
			tc.mockSetup(s)

			resp, err := s.uc.CreateCheckout(context.Background(), owner.ID, &models.CheckoutRequest{PlanID: tc.planID})

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, resp)
		})
	}
}
