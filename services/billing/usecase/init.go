package usecase

import (
	"time"

	"github.com/codermehran/Mo/internal/pkg/metrics"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/billing"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	planCacheSize = 64
	planCacheTTL  = 10 * time.Minute

	// subscriptionPeriodDays is the length of one paid period
	subscriptionPeriodDays = 30
)

// BillingUC implements checkout, callback reconciliation and the billing summary
type BillingUC struct {
	billingRepo billing.BillingRepo
	billingGW   billing.BillingGW
	metrics     *metrics.Metrics
	gatewayCfg  models.GatewayConfig
	plans       *expirable.LRU[uuid.UUID, *models.Plan]
	now         func() time.Time
}

// NewBillingUC creates a new billing usecase instance
func NewBillingUC(
	cfg *models.Config,
	billingRepo billing.BillingRepo,
	billingGW billing.BillingGW,
	m *metrics.Metrics,
) *BillingUC {
	return &BillingUC{
		billingRepo: billingRepo,
		billingGW:   billingGW,
		metrics:     m,
		gatewayCfg:  cfg.Gateway,
		plans:       expirable.NewLRU[uuid.UUID, *models.Plan](planCacheSize, nil, planCacheTTL),
		now:         time.Now,
	}
}
