package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/auth"
)

var userRowColumns = []string{"id", "username", "email", "phone_number", "role", "clinic_id", "is_active", "created_at", "updated_at"}

func TestFindUsersByPhone(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	now := time.Now()
	first := uuid.New()
	second := uuid.New()
	clinicID := uuid.New()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow(first.String(), "sara", nil, "09123456789", "CLINIC_OWNER", clinicID.String(), true, now, now).
		AddRow(second.String(), "sara2", "s@example.com", "09123456789", "STAFF", nil, true, now, now)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE phone_number = \$1 ORDER BY created_at LIMIT \$2`).
		WithArgs("09123456789", 2).
		WillReturnRows(rows)

	users, err := repo.FindUsersByPhone(context.Background(), "09123456789", 2)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first, users[0].ID)
	assert.Equal(t, models.RoleClinicOwner, users[0].Role)
	require.NotNil(t, users[0].ClinicID)
	assert.Equal(t, clinicID, *users[0].ClinicID)
	assert.Nil(t, users[1].ClinicID)
	require.NotNil(t, users[1].Email)
	assert.Equal(t, "s@example.com", *users[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		id := uuid.New()
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(id.String(), "reza", nil, "09120000000", "PRACTITIONER", nil, true, now, now))

		user, err := repo.GetUserByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, "reza", user.Username)
		assert.True(t, user.RequiresSetup())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		id := uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := repo.GetUserByID(context.Background(), id)

		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})
}
