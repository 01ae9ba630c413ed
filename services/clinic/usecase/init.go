package usecase

import (
	"time"

	"github.com/codermehran/Mo/internal/pkg/metrics"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/clinic"
)

// ClinicUC implements tenant setup and the plan limit guard
type ClinicUC struct {
	clinicRepo clinic.ClinicRepo
	metrics    *metrics.Metrics
	limits     models.PlanLimitConfig
	now        func() time.Time
}

// NewClinicUC creates a new clinic usecase instance
func NewClinicUC(cfg *models.Config, clinicRepo clinic.ClinicRepo, m *metrics.Metrics) *ClinicUC {
	return &ClinicUC{
		clinicRepo: clinicRepo,
		metrics:    m,
		limits:     cfg.Limits,
		now:        time.Now,
	}
}
