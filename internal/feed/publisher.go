package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher pushes stored notifications onto a change feed so clients can
// subscribe to inserts for their own user id instead of polling. Delivery is
// best-effort; callers never treat a publish failure as fatal.
type Publisher interface {
	PublishNotification(ctx context.Context, n *domain.Notification) error
	Close()
}

// RabbitPublisher publishes to a direct exchange with the recipient user id
// as the routing key, so a client binds one queue per user.
type RabbitPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open RabbitMQ channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	logger.Info("Notification feed initialized", "exchange", exchange)

	return &RabbitPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}, nil
}

func (p *RabbitPublisher) PublishNotification(ctx context.Context, n *domain.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		strconv.Itoa(int(n.UserID)), // routing key = recipient
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

func (p *RabbitPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	logger.Info("Notification feed connection closed")
}

// NoopPublisher is used when the feed is disabled in configuration.
type NoopPublisher struct{}

func (NoopPublisher) PublishNotification(ctx context.Context, n *domain.Notification) error {
	return nil
}

func (NoopPublisher) Close() {}
