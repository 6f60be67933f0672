package messaging

import (
	"context"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPChannel is the part of *amqp091.Channel the publisher needs.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type billingEventPublisher struct {
	Log     *zap.Logger
	Channel AMQPChannel
	Queue   string
	mu      sync.Mutex
}

// NewBillingEventPublisher opens a channel on conn and declares queue as durable.
func NewBillingEventPublisher(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.BillingEventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return NewBillingEventPublisherWithChannel(channel, queue, logger), nil
}

func NewBillingEventPublisherWithChannel(channel AMQPChannel, queue string, logger *zap.Logger) contracts.BillingEventPublisher {
	return &billingEventPublisher{
		Log:     logger,
		Channel: channel,
		Queue:   queue,
	}
}

func (p *billingEventPublisher) PublishBillingEvent(ctx context.Context, event *models.BillingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         event.Event,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	// amqp091 channels are not safe for concurrent publishing.
	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Debug("billingEventPublisher.PublishBillingEvent published",
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingCustomerIDKey, event.CustomerID),
	)
	return nil
}

type noopPublisher struct {
	Log *zap.Logger
}

// NewNoopPublisher is used when no broker is configured; events are logged and dropped.
func NewNoopPublisher(logger *zap.Logger) contracts.BillingEventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) PublishBillingEvent(ctx context.Context, event *models.BillingEvent) error {
	p.Log.Debug("noopPublisher.PublishBillingEvent dropped event",
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingCustomerIDKey, event.CustomerID),
	)
	return nil
}
