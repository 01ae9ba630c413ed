package repository

import (
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// BillingRepo implements the billing repository interface
type BillingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBillingRepo creates a new billing repository instance
func NewBillingRepo(cfg *models.Config, db *sqlx.DB) *BillingRepo {
	return &BillingRepo{
		cfg: cfg,
		db:  db,
	}
}
