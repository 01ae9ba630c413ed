package repository

import (
	"errors"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
)

const uniqueViolation = "23505"

// ClinicRepo implements the clinic repository interface
type ClinicRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewClinicRepo creates a new clinic repository instance
func NewClinicRepo(cfg *models.Config, db *sqlx.DB) *ClinicRepo {
	return &ClinicRepo{
		cfg: cfg,
		db:  db,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
