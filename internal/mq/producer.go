package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher emits domain events after a mutation commits. A nil Publisher
// (or one without a broker connection) silently drops events so the service
// runs without RabbitMQ.
type Publisher struct {
	conn   *amqp.Connection
	logger *zap.Logger
}

func NewPublisher(conn *amqp.Connection, logger *zap.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// Publish sends one event to the events queue. Failures are logged, never
// propagated: the mutation already committed and must not be reported as
// failed.
func (p *Publisher) Publish(event string, data any) {
	if p == nil || p.conn == nil {
		return
	}
	if err := p.send(event, data); err != nil && p.logger != nil {
		p.logger.Warn("failed to publish event",
			zap.String("event", event),
			zap.Error(err),
		)
	}
}

func (p *Publisher) send(event string, data any) error {
	ch, err := NewChannel(p.conn)
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(Envelope{
		Event:      event,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = ch.PublishWithContext(
		context.Background(),
		"",
		EventsQueue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", EventsQueue, err)
	}

	return nil
}
