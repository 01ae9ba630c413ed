package gateway

import (
	"context"

	"github.com/codermehran/Mo/internal/pkg/constants"
	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
)

// EventPublisher is satisfied by *nsq.Producer
type EventPublisher interface {
	Publish(topic string, message interface{}) error
}

// NSQGateway publishes billing events
type NSQGateway struct {
	publisher EventPublisher
}

// NewNSQGateway creates the event gateway. A nil publisher drops events.
func NewNSQGateway(publisher EventPublisher) *NSQGateway {
	return &NSQGateway{publisher: publisher}
}

// PublishSubscriptionActivated announces a plan activation
func (g *NSQGateway) PublishSubscriptionActivated(ctx context.Context, event *models.SubscriptionActivatedEvent) error {
	if g.publisher == nil {
		logger.Debug("NSQ disabled, dropping event",
			logger.String("topic", constants.TopicSubscriptionActivated),
			logger.String("reference_id", event.ReferenceID))
		return nil
	}
	return g.publisher.Publish(constants.TopicSubscriptionActivated, event)
}
