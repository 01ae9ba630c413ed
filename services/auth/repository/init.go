package repository

import (
	"github.com/codermehran/Mo/internal/pkg/database"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// AuthRepo implements the auth repository interface on Postgres and Redis
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
