package shared

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"marketplace-orders/internal/pkg/clock"
)

// Routing keys on the events exchange.
const (
	TopicBookingCreated               = "booking.created"
	TopicBookingStatusChanged         = "booking.status_changed"
	TopicBookingCancellationRequested = "booking.cancellation_requested"
	TopicPurchaseCreated              = "purchase.created"
	TopicPurchaseCancelled            = "purchase.cancelled"
	TopicPurchaseStatusChanged        = "purchase.status_changed"
)

type NotificationEvent struct {
	Kind       string         `json:"kind"`
	RoutingKey string         `json:"routing_key"`
	Reference  string         `json:"reference"`
	Recipient  string         `json:"recipient"`
	Subject    string         `json:"subject"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Notifier publishes an event to the broker.
type Notifier interface {
	Publish(ctx context.Context, ev NotificationEvent) error
}

type NotificationDispatcher interface {
	Dispatch(ctx context.Context, ev NotificationEvent) SideEffectResult
}

type dispatcher struct {
	notifier Notifier
	uow      UnitOfWork
	clock    clock.Clock
	logger   *slog.Logger
}

func NewNotificationDispatcher(notifier Notifier, uow UnitOfWork, clk clock.Clock, logger *slog.Logger) NotificationDispatcher {
	return &dispatcher{notifier: notifier, uow: uow, clock: clk, logger: logger}
}

// Dispatch publishes ev best-effort. When publishing fails the event is parked
// in notification_jobs for the relay, also best-effort.
func (d *dispatcher) Dispatch(ctx context.Context, ev NotificationEvent) SideEffectResult {
	attrs := []slog.Attr{
		slog.String("routing_key", ev.RoutingKey),
		slog.String("reference", ev.Reference),
	}

	res := BestEffort(ctx, d.logger, "notify", attrs, func(ctx context.Context) error {
		return d.notifier.Publish(ctx, ev)
	})
	if res.OK() {
		return res
	}

	BestEffort(ctx, d.logger, "notify_park", attrs, func(ctx context.Context) error {
		payload, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		return d.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
			return tx.Notifications().CreateJob(ctx, tx.DB(), ev.Kind, ev.RoutingKey, payload, d.clock.Now())
		})
	})
	return res
}

type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends a rendered notification to its recipient.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
