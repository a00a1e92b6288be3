package messaging

import (
	"context"
	"encoding/json"
	"sync"

	"marketplace-orders/internal/pkg/config"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher publishes notification events as persistent JSON on a topic exchange.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
}

func NewPublisher(cfg config.BrokerConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := declareExchange(ch, cfg.Exchange); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

func (p *Publisher) Publish(ctx context.Context, ev shared.NotificationEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return errs.New("publisher closed")
	}
	err = p.ch.PublishWithContext(ctx, p.exchange, ev.RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		Type:         ev.Kind,
		Body:         b,
	})
	return errs.Wrapf(err, "publish %s", ev.RoutingKey)
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

func declareExchange(ch *amqp.Channel, exchange string) error {
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "declare exchange")
	}
	return nil
}

// Offline stands in for the publisher when the broker could not be reached.
// Every publish fails with Err, so dispatched events get parked.
type Offline struct {
	Err error
}

func (o Offline) Publish(context.Context, shared.NotificationEvent) error {
	return o.Err
}
