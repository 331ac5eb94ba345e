package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rafaelleal24/eshop/internal/adapters/config"
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type connection interface {
	Channel() (channel, error)
	Close() error
}

type amqpConnection struct {
	*amqp.Connection
}

func (c amqpConnection) Channel() (channel, error) {
	return c.Connection.Channel()
}

func dialAMQP(url string) (connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return amqpConnection{conn}, nil
}

// QueueSender publishes each event as one JSON message on a single queue.
// Every call opens its own connection and channel and closes both before
// returning, whatever the outcome. Nothing is retried.
type QueueSender struct {
	connectionString string
	queueName        string
	dial             func(url string) (connection, error)
}

func NewQueueSender(cfg config.MessagingConfig) *QueueSender {
	return &QueueSender{
		connectionString: cfg.ConnectionString,
		queueName:        cfg.QueueName,
		dial:             dialAMQP,
	}
}

func (s *QueueSender) Publish(ctx context.Context, event domain.Event) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	conn, err := s.dial(s.connectionString)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && !errors.Is(closeErr, amqp.ErrClosed) {
			logger.Warn(ctx, "publish: closing connection failed", map[string]any{
				"error": closeErr.Error(),
			})
		}
	}()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() {
		if closeErr := ch.Close(); closeErr != nil && !errors.Is(closeErr, amqp.ErrClosed) {
			logger.Warn(ctx, "publish: closing channel failed", map[string]any{
				"error": closeErr.Error(),
			})
		}
	}()

	if _, err := ch.QueueDeclare(s.queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", s.queueName, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Type:         event.GetName(),
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}
	if err := ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", s.queueName, err)
	}

	logger.Info(ctx, "event published", map[string]any{
		"event_name":  event.GetName(),
		"entity_name": event.GetEntityName(),
		"queue":       s.queueName,
	})
	return nil
}

// HealthCheck dials the broker and hangs up.
func (s *QueueSender) HealthCheck(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	conn, err := s.dial(s.connectionString)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}
	return conn.Close()
}
