package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/MKhiriev/pos-lite/internal/config"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/models"
)

const publishTimeout = 5 * time.Second

// channel is the subset of *amqp091.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type amqpPublisher struct {
	conn     *amqp091.Connection
	channel  channel
	exchange string
	queue    string

	logger *logger.Logger
}

// NewAMQPPublisher dials cfg.URL and declares a durable direct exchange
// bound to a durable queue, using the queue name as routing key.
func NewAMQPPublisher(cfg config.ServerBroker, logger *logger.Logger) (Publisher, error) {
	if cfg.URL == "" {
		return nil, ErrEmptyBrokerURL
	}

	conn, err := amqp091.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := newAMQPPublisher(ch, cfg.Exchange, cfg.Queue, logger)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn

	logger.Info().
		Str("func", "NewAMQPPublisher").
		Str("exchange", cfg.Exchange).
		Str("queue", cfg.Queue).
		Msg("connected to message broker")

	return p, nil
}

func newAMQPPublisher(ch channel, exchange, queue string, logger *logger.Logger) (*amqpPublisher, error) {
	p := &amqpPublisher{
		channel:  ch,
		exchange: exchange,
		queue:    queue,
		logger:   logger,
	}

	if err := p.setup(); err != nil {
		ch.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return p, nil
}

func (p *amqpPublisher) setup() error {
	if err := p.channel.ExchangeDeclare(p.exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := p.channel.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := p.channel.QueueBind(p.queue, p.queue, p.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

func (p *amqpPublisher) PublishSaleRecorded(ctx context.Context, event models.SaleRecordedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchange, p.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.LocalID,
		Timestamp:    event.RecordedAt,
		Type:         "sale.recorded",
		Body:         body,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "amqpPublisher.PublishSaleRecorded").
			Str("local_id", event.LocalID).
			Msg("failed to publish sale event")
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	return nil
}

func (p *amqpPublisher) Close() error {
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
