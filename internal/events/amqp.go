package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeType = "topic"

	maxRetries     = 3
	initialBackoff = 100 * time.Millisecond
	maxBackoff     = 2 * time.Second
	confirmTimeout = 5 * time.Second
)

var errNotAcknowledged = errors.New("event not acknowledged")

// AMQPPublisher publishes item events to a durable topic exchange with
// publisher confirms enabled. The routing key is the event type.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *logger.Logger
}

// NewAMQPPublisher dials url, declares exchange and enables confirms.
func NewAMQPPublisher(url, exchange string, log *logger.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err = channel.ExchangeDeclare(
		exchange,
		exchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	if err = channel.Confirm(false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	log.Info().Str("func", "NewAMQPPublisher").Str("exchange", exchange).Msg("connected to RabbitMQ")

	return &AMQPPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   log,
	}, nil
}

// Publish sends event with exponential backoff between attempts.
func (p *AMQPPublisher) Publish(ctx context.Context, event models.ItemEvent) error {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	backoff := initialBackoff
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				backoff = min(backoff*2, maxBackoff)
			}
		}

		lastErr = p.publishOnce(ctx, event, body)
		if lastErr == nil {
			log.Debug().
				Str("func", "AMQPPublisher.Publish").
				Str("event_id", event.EventID).
				Str("event_type", event.EventType).
				Msg("event published")
			return nil
		}

		log.Warn().Err(lastErr).
			Str("func", "AMQPPublisher.Publish").
			Int("attempt", attempt+1).
			Msg("failed to publish event, retrying")
	}

	return fmt.Errorf("failed to publish event after %d attempts: %w", maxRetries, lastErr)
}

func (p *AMQPPublisher) publishOnce(ctx context.Context, event models.ItemEvent, body []byte) error {
	confirmation, err := p.channel.PublishWithDeferredConfirmWithContext(
		ctx,
		p.exchange,
		event.EventType,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			MessageId:    event.EventID,
			Body:         body,
			Headers: amqp.Table{
				"event_type": event.EventType,
			},
		},
	)
	if err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()

	acked, err := confirmation.WaitContext(waitCtx)
	if err != nil {
		return err
	}
	if !acked {
		return errNotAcknowledged
	}

	return nil
}

// Close closes the channel and the connection.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.Err(err).Str("func", "AMQPPublisher.Close").Msg("failed to close channel")
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return err
		}
	}
	return nil
}
