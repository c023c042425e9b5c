package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/finlane/paycore/internal/domain/event"
)

const dialTimeout = 10 * time.Second

// Producer publishes protocol events to a durable topic exchange, one
// routing key per protocol step ("payment.<step>"). Delivery failures are
// logged and swallowed: observability must not fail a transfer.
type Producer struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	logger   *slog.Logger
}

func NewProducer(url, exchange string, logger *slog.Logger) (*Producer, error) {
	conn, err := amqp091.DialConfig(url, amqp091.Config{Dial: amqp091.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Producer{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

func (p *Producer) Emit(ctx context.Context, e event.Event) {
	body, err := json.Marshal(e)
	if err != nil {
		p.logger.Error("event marshal failed", "step", e.Step, "error", err)
		return
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		"payment."+string(e.Step),
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   e.OccurredAt,
			Body:        body,
		},
	)
	if err != nil {
		p.logger.Error("event publish failed", "step", e.Step, "error", err)
	}
}

func (p *Producer) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
