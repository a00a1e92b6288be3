package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"marketplace-orders/internal/pkg/config"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes one decoded event. A returned error requeues the delivery.
type Handler func(ctx context.Context, ev shared.NotificationEvent) error

// Acknowledger is the subset of amqp.Delivery used to settle a message.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type Consumer struct {
	cfg    config.BrokerConfig
	logger *slog.Logger

	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConsumer(cfg config.BrokerConfig, logger *slog.Logger) *Consumer {
	return &Consumer{cfg: cfg, logger: logger}
}

// Connect declares the exchange, the durable queue and its bindings.
func (c *Consumer) Connect() error {
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "open channel")
	}

	fail := func(err error) error {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	if err := declareExchange(ch, c.cfg.Exchange); err != nil {
		return fail(err)
	}
	q, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil)
	if err != nil {
		return fail(errs.Wrap(err, "declare queue"))
	}
	for _, key := range c.cfg.Bindings {
		if err := ch.QueueBind(q.Name, key, c.cfg.Exchange, false, nil); err != nil {
			return fail(errs.Wrapf(err, "bind %s", key))
		}
	}

	prefetch := c.cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 8
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return fail(errs.Wrap(err, "set qos"))
	}

	c.conn = conn
	c.ch = ch
	return nil
}

// Run consumes until ctx is done or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	msgs, err := c.ch.ConsumeWithContext(ctx, c.cfg.Queue, "notifier", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "consume")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			c.Settle(ctx, &d, d.RoutingKey, d.Body, handle)
		}
	}
}

// Settle decodes body and acks, rejects or requeues it depending on the outcome.
func (c *Consumer) Settle(ctx context.Context, ack Acknowledger, routingKey string, body []byte, handle Handler) {
	var ev shared.NotificationEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		c.logger.Warn("rejecting malformed event",
			slog.String("routing_key", routingKey),
			slog.String("error", err.Error()))
		_ = ack.Nack(false, false)
		return
	}
	if ev.RoutingKey == "" {
		ev.RoutingKey = routingKey
	}

	if err := handle(ctx, ev); err != nil {
		c.logger.Error("event handling failed, requeueing",
			slog.String("routing_key", routingKey),
			slog.String("reference", ev.Reference),
			slog.String("error", err.Error()))
		_ = ack.Nack(false, true)
		return
	}
	_ = ack.Ack(false)
}

func (c *Consumer) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
