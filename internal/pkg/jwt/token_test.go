package jwt

import (
	"testing"
	"time"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Issuer:     "clinic-test",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}
}

func testUser(withClinic bool) *models.User {
	u := &models.User{
		ID:          uuid.New(),
		PhoneNumber: "09123456789",
		Role:        models.RoleClinicOwner,
	}
	if withClinic {
		clinicID := uuid.New()
		u.ClinicID = &clinicID
	}
	return u
}

func TestGeneratePair(t *testing.T) {
	tests := []struct {
		name       string
		withClinic bool
	}{
		{name: "user with clinic", withClinic: true},
		{name: "user without clinic", withClinic: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(getTestConfig())
			user := testUser(tt.withClinic)

			pair, err := m.GeneratePair(user)
			require.NoError(t, err)
			assert.NotEmpty(t, pair.Access)
			assert.NotEmpty(t, pair.Refresh)
			assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))

			access, err := m.Parse(pair.Access, models.TokenTypeAccess)
			require.NoError(t, err)
			assert.Equal(t, user.ID, access.UserID)
			assert.Equal(t, models.RoleClinicOwner, access.Role)
			assert.Equal(t, user.ClinicID, access.ClinicID)

			refresh, err := m.Parse(pair.Refresh, models.TokenTypeRefresh)
			require.NoError(t, err)
			assert.NotEqual(t, access.TokenID, refresh.TokenID)
			assert.Equal(t, pair.RefreshExpiresAt.Unix(), refresh.ExpiresAt.Unix())
		})
	}
}

func TestParse_WrongType(t *testing.T) {
	m := NewManager(getTestConfig())
	pair, err := m.GeneratePair(testUser(true))
	require.NoError(t, err)

	_, err = m.Parse(pair.Access, models.TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestParse_Invalid(t *testing.T) {
	m := NewManager(getTestConfig())
	pair, err := m.GeneratePair(testUser(false))
	require.NoError(t, err)

	other := getTestConfig()
	other.Secret = "another-secret"

	expired := NewManager(getTestConfig())
	expired.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	oldPair, err := expired.GeneratePair(testUser(false))
	require.NoError(t, err)

	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": uuid.NewString(), "typ": "refresh"})
	unsigned, err := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		manager *Manager
		token   string
	}{
		{name: "garbage", manager: m, token: "not-a-token"},
		{name: "wrong secret", manager: NewManager(other), token: pair.Refresh},
		{name: "expired", manager: m, token: oldPair.Refresh},
		{name: "none algorithm", manager: m, token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.manager.Parse(tt.token, models.TokenTypeRefresh)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
