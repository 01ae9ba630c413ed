package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// Publisher is the subset of *nsq.Producer used here
type Publisher interface {
	Publish(topic string, body []byte) error
	Stop()
}

// Producer publishes JSON events to nsqd
type Producer struct {
	producer Publisher
}

// NewProducer connects to nsqd and pings it
func NewProducer(address string) (*Producer, error) {
	p, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	if err := p.Ping(); err != nil {
		p.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}
	p.SetLogger(nil, nsq.LogLevelError)

	return &Producer{producer: p}, nil
}

// NewProducerWith wraps an existing publisher
func NewProducerWith(p Publisher) *Producer {
	return &Producer{producer: p}
}

// Publish marshals message and sends it to topic
func (p *Producer) Publish(topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
