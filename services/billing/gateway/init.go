package gateway

import (
	"github.com/codermehran/Mo/internal/pkg/circuitbreaker"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/billing"
)

// BillingGW combines the payment gateway client and the event publisher
type BillingGW struct {
	*BitPayGateway
	*NSQGateway
}

// NewBillingGW creates the billing gateway. publisher may be nil when NSQ is disabled.
func NewBillingGW(cfg models.GatewayConfig, breaker *circuitbreaker.CircuitBreaker, publisher EventPublisher) billing.BillingGW {
	return &BillingGW{
		BitPayGateway: NewBitPayGateway(cfg, breaker),
		NSQGateway:    NewNSQGateway(publisher),
	}
}
