package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/quickfix-app/quickfix/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject. Messages on a
// single subscription are dispatched sequentially, so delivery order for a
// wildcard subject matches publish order.
type Consumer struct {
	client       *Client
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject with an optional queue group
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	process := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", msg.Subject),
				logger.Err(err))
		}
	}

	var (
		subscription *nats.Subscription
		err          error
	)
	if queueGroup != "" {
		subscription, err = client.GetConn().QueueSubscribe(subject, queueGroup, process)
	} else {
		subscription, err = client.GetConn().Subscribe(subject, process)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{
		client:       client,
		subscription: subscription,
	}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.subscription == nil {
		return nil
	}
	return c.subscription.Unsubscribe()
}
