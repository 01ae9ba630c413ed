package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/internal/utils"
	"github.com/codermehran/Mo/services/auth"
)

func registeredUser(clinicID *uuid.UUID) *models.User {
	role := models.RolePatient
	if clinicID != nil {
		role = models.RoleClinicOwner
	}
	return &models.User{
		ID:          uuid.New(),
		Username:    "sara",
		PhoneNumber: testPhone,
		Role:        role,
		ClinicID:    clinicID,
		IsActive:    true,
	}
}

func TestRequestOTP(t *testing.T) {
	user := registeredUser(nil)

	testCases := []struct {
		name       string
		req        *models.RequestOTPRequest
		clientIP   string
		mockSetup  func(s *authUCTest)
		assertFunc func(t *testing.T, s *authUCTest, resp *models.RequestOTPResponse, err error)
	}{
		{
			name:     "Success",
			req:      &models.RequestOTPRequest{PhoneNumber: "  0912 345-6789 ", Purpose: models.OTPPurposeLogin},
			clientIP: testIP,
			mockSetup: func(s *authUCTest) {
				since := s.now.Add(-10 * time.Minute)
				var created *models.OTPRecord
				s.repo.EXPECT().CountOTPByPhoneSince(gomock.Any(), testPhone, since).Return(1, nil)
				s.repo.EXPECT().CountOTPByIPSince(gomock.Any(), testIP, since).Return(1, nil)
				s.repo.EXPECT().FindUsersByPhone(gomock.Any(), testPhone, 2).Return([]*models.User{user}, nil)
				s.repo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, otp *models.OTPRecord) error {
						otp.ID = uuid.New()
						created = otp
						return nil
					})
				s.sms.EXPECT().SendOTP(gomock.Any(), testPhone, gomock.Any(), models.OTPPurposeLogin).
					DoAndReturn(func(_ context.Context, phone, code string, _ models.OTPPurpose) error {
						require.NotNil(t, created)
						assert.True(t, utils.IsOTPFormat(code))
						assert.Equal(t, utils.HashOTP(testSecret, phone, code), created.CodeHash)
						assert.Equal(t, user.ID, *created.UserID)
						assert.Equal(t, testIP, *created.IPAddress)
						assert.Equal(t, s.now.Add(120*time.Second), created.ExpiresAt)
						assert.True(t, created.ExpiresAt.After(created.CreatedAt))
						return nil
					})
			},
			assertFunc: func(t *testing.T, s *authUCTest, resp *models.RequestOTPResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, resp.SentCount)
				assert.Equal(t, 120, resp.ExpiresIn)
				assert.Equal(t, models.OTPPurposeLogin, resp.Purpose)
			},
		},
		{
			name:     "Rate limited by phone creates no record",
			req:      &models.RequestOTPRequest{PhoneNumber: testPhone, Purpose: models.OTPPurposeLogin},
			clientIP: testIP,
			mockSetup: func(s *authUCTest) {
				s.repo.EXPECT().CountOTPByPhoneSince(gomock.Any(), testPhone, gomock.Any()).Return(3, nil)
				s.repo.EXPECT().CountOTPByIPSince(gomock.Any(), testIP, gomock.Any()).Return(0, nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, resp *models.RequestOTPResponse, err error) {
				assert.ErrorIs(t, err, auth.ErrRateLimited)
				assert.Nil(t, resp)
			},
		},
		{
			name:     "Rate limited by ip",
			req:      &models.RequestOTPRequest{PhoneNumber: testPhone, Purpose: models.OTPPurposeRecovery},
			clientIP: testIP,
			mockSetup: func(s *authUCTest) {
				s.repo.EXPECT().CountOTPByPhoneSince(gomock.Any(), testPhone, gomock.Any()).Return(0, nil)
				s.repo.EXPECT().CountOTPByIPSince(gomock.Any(), testIP, gomock.Any()).Return(3, nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, resp *models.RequestOTPResponse, err error) {
				assert.ErrorIs(t, err, auth.ErrRateLimited)
			},
		},
		{
			name: "No client ip skips the ip count",
			req:  &models.RequestOTPRequest{PhoneNumber: testPhone, Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {
				s.repo.EXPECT().CountOTPByPhoneSince(gomock.Any(), testPhone, gomock.Any()).Return(0, nil)
				s.repo.EXPECT().FindUsersByPhone(gomock.Any(), testPhone, 2).Return([]*models.User{user}, nil)
				s.repo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, otp *models.OTPRecord) error {
						assert.Nil(t, otp.IPAddress)
						return nil
					})
				s.sms.EXPECT().SendOTP(gomock.Any(), testPhone, gomock.Any(), models.OTPPurposeLogin).Return(nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, resp *models.RequestOTPResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, resp.SentCount)
			},
		},
		{
			name: "Unknown phone",
			req:  &models.RequestOTPRequest{PhoneNumber: testPhone, Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {
				s.repo.EXPECT().CountOTPByPhoneSince(gomock.Any(), testPhone, gomock.Any()).Return(0, nil)
				s.repo.EXPECT().FindUsersByPhone(gomock.Any(), testPhone, 2).Return(nil, nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, resp *models.RequestOTPResponse, err error) {
				assert.ErrorIs(t, err, auth.ErrUserNotFound)
			},
		},
		{
			name: "Phone shared by two users",
			req:  &models.RequestOTPRequest{PhoneNumber: testPhone, Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {
				s.repo.EXPECT().CountOTPByPhoneSince(gomock.Any(), testPhone, gomock.Any()).Return(0, nil)
				s.repo.EXPECT().FindUsersByPhone(gomock.Any(), testPhone, 2).
					Return([]*models.User{registeredUser(nil), registeredUser(nil)}, nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, resp *models.RequestOTPResponse, err error) {
				assert.ErrorIs(t, err, auth.ErrAmbiguousUser)
			},
		},
		{
			name:      "Invalid purpose",
			req:       &models.RequestOTPRequest{PhoneNumber: testPhone, Purpose: "SIGNUP"},
			mockSetup: func(s *authUCTest) {},
			assertFunc: func(t *testing.T, s *authUCTest, resp *models.RequestOTPResponse, err error) {
				assert.ErrorIs(t, err, auth.ErrInvalidPurpose)
			},
		},
		{
			name:      "Blank phone",
			req:       &models.RequestOTPRequest{PhoneNumber: "   ", Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {},
			assertFunc: func(t *testing.T, s *authUCTest, resp *models.RequestOTPResponse, err error) {
				assert.ErrorIs(t, err, auth.ErrInvalidPhone)
			},
		},
		{
			name: "Delivery failure deletes the record",
			req:  &models.RequestOTPRequest{PhoneNumber: testPhone, Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {
				otpID := uuid.New()
				s.repo.EXPECT().CountOTPByPhoneSince(gomock.Any(), testPhone, gomock.Any()).Return(0, nil)
				s.repo.EXPECT().FindUsersByPhone(gomock.Any(), testPhone, 2).Return([]*models.User{user}, nil)
				s.repo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, otp *models.OTPRecord) error {
						otp.ID = otpID
						return nil
					})
				s.sms.EXPECT().SendOTP(gomock.Any(), testPhone, gomock.Any(), models.OTPPurposeLogin).
					Return(errors.New("provider unavailable"))
				s.repo.EXPECT().DeleteOTP(gomock.Any(), otpID).Return(nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, resp *models.RequestOTPResponse, err error) {
				assert.ErrorIs(t, err, auth.ErrDeliveryFailed)
				assert.Contains(t, err.Error(), "provider unavailable")
				assert.Nil(t, resp)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := setupAuthUC(t)
			tc.mockSetup(s)

			resp, err := s.uc.RequestOTP(context.Background(), tc.req, tc.clientIP)
			tc.assertFunc(t, s, resp, err)
		})
	}
}

func pendingRecord(now time.Time, userID *uuid.UUID, code string) *models.OTPRecord {
	return &models.OTPRecord{
		ID:          uuid.New(),
		UserID:      userID,
		PhoneNumber: testPhone,
		Purpose:     models.OTPPurposeLogin,
		CodeHash:    utils.HashOTP(testSecret, testPhone, code),
		SentCount:   1,
		CreatedAt:   now.Add(-30 * time.Second),
		ExpiresAt:   now.Add(90 * time.Second),
	}
}

func TestVerifyOTP(t *testing.T) {
	clinicID := uuid.New()
	owner := registeredUser(&clinicID)

	testCases := []struct {
		name       string
		req        *models.VerifyOTPRequest
		mockSetup  func(s *authUCTest)
		assertFunc func(t *testing.T, s *authUCTest, session *models.Session, err error)
	}{
		{
			name: "Success",
			req:  &models.VerifyOTPRequest{PhoneNumber: testPhone, Code: "123456", Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {
				otp := pendingRecord(s.now, &owner.ID, "123456")
				s.repo.EXPECT().IncrementVerifyAttempts(gomock.Any(), testIP, models.OTPPurposeLogin, 10*time.Minute).Return(int64(1), nil)
				s.repo.EXPECT().GetLatestPendingOTP(gomock.Any(), testPhone, models.OTPPurposeLogin).Return(otp, nil)
				s.repo.EXPECT().IncrementOTPAttempts(gomock.Any(), otp.ID).Return(1, nil)
				s.repo.EXPECT().MarkOTPVerified(gomock.Any(), otp.ID).Return(true, nil)
				s.repo.EXPECT().GetUserByID(gomock.Any(), owner.ID).Return(owner, nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, session *models.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, session.Attempts)
				assert.Equal(t, owner.ID, session.UserID)
				assert.Equal(t, models.RoleClinicOwner, session.Role)
				assert.False(t, session.RequiresSetup)
				assert.Equal(t, &clinicID, session.ClinicID)

				access, err := s.tokens.Parse(session.Tokens.Access, models.TokenTypeAccess)
				require.NoError(t, err)
				assert.Equal(t, owner.ID, access.UserID)
				refresh, err := s.tokens.Parse(session.Tokens.Refresh, models.TokenTypeRefresh)
				require.NoError(t, err)
				assert.Equal(t, &clinicID, refresh.ClinicID)
			},
		},
		{
			name:      "Code must be six digits",
			req:       &models.VerifyOTPRequest{PhoneNumber: testPhone, Code: "12a456", Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {},
			assertFunc: func(t *testing.T, s *authUCTest, session *models.Session, err error) {
				assert.ErrorIs(t, err, auth.ErrInvalidCodeFormat)
			},
		},
		{
			name: "IP throttled before any record is touched",
			req:  &models.VerifyOTPRequest{PhoneNumber: testPhone, Code: "123456", Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {
				s.repo.EXPECT().IncrementVerifyAttempts(gomock.Any(), testIP, models.OTPPurposeLogin, gomock.Any()).Return(int64(11), nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, session *models.Session, err error) {
				assert.ErrorIs(t, err, auth.ErrIPThrottled)
			},
		},
		{
			name: "No pending record",
			req:  &models.VerifyOTPRequest{PhoneNumber: testPhone, Code: "123456", Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {
				s.repo.EXPECT().IncrementVerifyAttempts(gomock.Any(), testIP, models.OTPPurposeLogin, gomock.Any()).Return(int64(1), nil)
				s.repo.EXPECT().GetLatestPendingOTP(gomock.Any(), testPhone, models.OTPPurposeLogin).Return(nil, auth.ErrNoPendingOTP)
			},
			assertFunc: func(t *testing.T, s *authUCTest, session *models.Session, err error) {
				assert.ErrorIs(t, err, auth.ErrNoPendingOTP)
			},
		},
		{
			name: "Expired code is rejected even when correct",
			req:  &models.VerifyOTPRequest{PhoneNumber: testPhone, Code: "123456", Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {
				otp := pendingRecord(s.now, &owner.ID, "123456")
				otp.ExpiresAt = s.now
				s.repo.EXPECT().IncrementVerifyAttempts(gomock.Any(), testIP, models.OTPPurposeLogin, gomock.Any()).Return(int64(1), nil)
				s.repo.EXPECT().GetLatestPendingOTP(gomock.Any(), testPhone, models.OTPPurposeLogin).Return(otp, nil)
				s.repo.EXPECT().IncrementOTPAttempts(gomock.Any(), otp.ID).Return(2, nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, session *models.Session, err error) {
				assert.ErrorIs(t, err, auth.ErrOTPExpired)
				var attemptErr *auth.AttemptError
				require.ErrorAs(t, err, &attemptErr)
				assert.Equal(t, 2, attemptErr.Attempts)
			},
		},
		{
			name: "Verified concurrently by another request",
			req:  &models.VerifyOTPRequest{PhoneNumber: testPhone, Code: "123456", Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {
				otp := pendingRecord(s.now, &owner.ID, "123456")
				s.repo.EXPECT().IncrementVerifyAttempts(gomock.Any(), testIP, models.OTPPurposeLogin, gomock.Any()).Return(int64(1), nil)
				s.repo.EXPECT().GetLatestPendingOTP(gomock.Any(), testPhone, models.OTPPurposeLogin).Return(otp, nil)
				s.repo.EXPECT().IncrementOTPAttempts(gomock.Any(), otp.ID).Return(1, nil)
				s.repo.EXPECT().MarkOTPVerified(gomock.Any(), otp.ID).Return(false, nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, session *models.Session, err error) {
				assert.ErrorIs(t, err, auth.ErrNoPendingOTP)
				assert.Nil(t, session)
			},
		},
		{
			name: "Unlinked record resolves an ambiguous phone",
			req:  &models.VerifyOTPRequest{PhoneNumber: testPhone, Code: "123456", Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {
				otp := pendingRecord(s.now, nil, "123456")
				s.repo.EXPECT().IncrementVerifyAttempts(gomock.Any(), testIP, models.OTPPurposeLogin, gomock.Any()).Return(int64(1), nil)
				s.repo.EXPECT().GetLatestPendingOTP(gomock.Any(), testPhone, models.OTPPurposeLogin).Return(otp, nil)
				s.repo.EXPECT().IncrementOTPAttempts(gomock.Any(), otp.ID).Return(1, nil)
				s.repo.EXPECT().MarkOTPVerified(gomock.Any(), otp.ID).Return(true, nil)
				s.repo.EXPECT().FindUsersByPhone(gomock.Any(), testPhone, 2).
					Return([]*models.User{registeredUser(nil), registeredUser(nil)}, nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, session *models.Session, err error) {
				assert.ErrorIs(t, err, auth.ErrAmbiguousUser)
				var attemptErr *auth.AttemptError
				require.ErrorAs(t, err, &attemptErr)
				assert.Equal(t, 1, attemptErr.Attempts)
			},
		},
		{
			name: "Deleted linked user falls back to the phone number",
			req:  &models.VerifyOTPRequest{PhoneNumber: testPhone, Code: "123456", Purpose: models.OTPPurposeLogin},
			mockSetup: func(s *authUCTest) {
				stale := uuid.New()
				fresh := registeredUser(nil)
				otp := pendingRecord(s.now, &stale, "123456")
				s.repo.EXPECT().IncrementVerifyAttempts(gomock.Any(), testIP, models.OTPPurposeLogin, gomock.Any()).Return(int64(1), nil)
				s.repo.EXPECT().GetLatestPendingOTP(gomock.Any(), testPhone, models.OTPPurposeLogin).Return(otp, nil)
				s.repo.EXPECT().IncrementOTPAttempts(gomock.Any(), otp.ID).Return(1, nil)
				s.repo.EXPECT().MarkOTPVerified(gomock.Any(), otp.ID).Return(true, nil)
				s.repo.EXPECT().GetUserByID(gomock.Any(), stale).Return(nil, auth.ErrUserNotFound)
				s.repo.EXPECT().FindUsersByPhone(gomock.Any(), testPhone, 2).Return([]*models.User{fresh}, nil)
			},
			assertFunc: func(t *testing.T, s *authUCTest, session *models.Session, err error) {
				require.NoError(t, err)
				assert.True(t, session.RequiresSetup)
				assert.Nil(t, session.ClinicID)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := setupAuthUC(t)
			tc.mockSetup(s)

			session, err := s.uc.VerifyOTP(context.Background(), tc.req, testIP)
			tc.assertFunc(t, s, session, err)
		})
	}
}

// Six wrong codes against one record: five invalid with attempts 1..5, then
// locked, and a correct code after the lock is still refused.
func TestVerifyOTP_AttemptCeiling(t *testing.T) {
	s := setupAuthUC(t)
	owner := registeredUser(nil)
	record := pendingRecord(s.now, &owner.ID, "123456")

	s.repo.EXPECT().IncrementVerifyAttempts(gomock.Any(), testIP, models.OTPPurposeLogin, gomock.Any()).
		Return(int64(1), nil).AnyTimes()
	s.repo.EXPECT().GetLatestPendingOTP(gomock.Any(), testPhone, models.OTPPurposeLogin).
		DoAndReturn(func(context.Context, string, models.OTPPurpose) (*models.OTPRecord, error) {
			cp := *record
			return &cp, nil
		}).Times(7)
	s.repo.EXPECT().IncrementOTPAttempts(gomock.Any(), record.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (int, error) {
			record.AttemptCount++
			return record.AttemptCount, nil
		}).Times(7)

	wrong := &models.VerifyOTPRequest{PhoneNumber: testPhone, Code: "000000", Purpose: models.OTPPurposeLogin}
	for i := 1; i <= 5; i++ {
		_, err := s.uc.VerifyOTP(context.Background(), wrong, testIP)
		assert.ErrorIs(t, err, auth.ErrInvalidOTP)
		var attemptErr *auth.AttemptError
		require.ErrorAs(t, err, &attemptErr)
		assert.Equal(t, i, attemptErr.Attempts)
	}

	_, err := s.uc.VerifyOTP(context.Background(), wrong, testIP)
	assert.ErrorIs(t, err, auth.ErrTooManyAttempts)

	correct := &models.VerifyOTPRequest{PhoneNumber: testPhone, Code: "123456", Purpose: models.OTPPurposeLogin}
	_, err = s.uc.VerifyOTP(context.Background(), correct, testIP)
	assert.ErrorIs(t, err, auth.ErrTooManyAttempts)
	var attemptErr *auth.AttemptError
	require.ErrorAs(t, err, &attemptErr)
	assert.Equal(t, 7, attemptErr.Attempts)
	assert.False(t, record.IsVerified)
}

// Issue then verify the delivered code for a user without a clinic.
func TestRequestAndVerifyOTP(t *testing.T) {
	s := setupAuthUC(t)
	user := registeredUser(nil)

	var stored *models.OTPRecord
	var delivered string
	s.repo.EXPECT().CountOTPByPhoneSince(gomock.Any(), testPhone, gomock.Any()).Return(0, nil)
	s.repo.EXPECT().CountOTPByIPSince(gomock.Any(), testIP, gomock.Any()).Return(0, nil)
	s.repo.EXPECT().FindUsersByPhone(gomock.Any(), testPhone, 2).Return([]*models.User{user}, nil)
	s.repo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, otp *models.OTPRecord) error {
			otp.ID = uuid.New()
			stored = otp
			return nil
		})
	s.sms.EXPECT().SendOTP(gomock.Any(), testPhone, gomock.Any(), models.OTPPurposeLogin).
		DoAndReturn(func(_ context.Context, _, code string, _ models.OTPPurpose) error {
			delivered = code
			return nil
		})

	resp, err := s.uc.RequestOTP(context.Background(),
		&models.RequestOTPRequest{PhoneNumber: testPhone, Purpose: models.OTPPurposeLogin}, testIP)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SentCount)
	assert.Equal(t, 120, resp.ExpiresIn)

	s.repo.EXPECT().IncrementVerifyAttempts(gomock.Any(), testIP, models.OTPPurposeLogin, gomock.Any()).Return(int64(1), nil)
	s.repo.EXPECT().GetLatestPendingOTP(gomock.Any(), testPhone, models.OTPPurposeLogin).Return(stored, nil)
	s.repo.EXPECT().IncrementOTPAttempts(gomock.Any(), stored.ID).Return(1, nil)
	s.repo.EXPECT().MarkOTPVerified(gomock.Any(), stored.ID).Return(true, nil)
	s.repo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)

	session, err := s.uc.VerifyOTP(context.Background(),
		&models.VerifyOTPRequest{PhoneNumber: testPhone, Code: delivered, Purpose: models.OTPPurposeLogin}, testIP)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Attempts)
	assert.Equal(t, user.ID, session.UserID)
	assert.True(t, session.RequiresSetup)
}
