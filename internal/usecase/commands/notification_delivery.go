package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/usecase/shared"
)

// NotificationDelivery turns a consumed event into mail.
type NotificationDelivery interface {
	Deliver(ctx context.Context, ev shared.NotificationEvent) error
}

type notificationDeliveryImpl struct {
	mailer shared.Mailer
}

func NewNotificationDelivery(mailer shared.Mailer) NotificationDelivery {
	return &notificationDeliveryImpl{mailer: mailer}
}

func (d *notificationDeliveryImpl) Deliver(ctx context.Context, ev shared.NotificationEvent) error {
	if strings.TrimSpace(ev.Recipient) == "" {
		return errs.Validation("notification %s for %s has no recipient", ev.RoutingKey, ev.Reference)
	}
	subject := ev.Subject
	if subject == "" {
		subject = fmt.Sprintf("Update on %s", ev.Reference)
	}
	return d.mailer.Send(ctx, shared.Mail{
		To:      ev.Recipient,
		Subject: subject,
		Body:    renderBody(ev),
	})
}

func renderBody(ev shared.NotificationEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reference: %s\n", ev.Reference)
	fmt.Fprintf(&b, "Event: %s\n", ev.RoutingKey)
	if !ev.OccurredAt.IsZero() {
		fmt.Fprintf(&b, "At: %s\n", ev.OccurredAt.UTC().Format("2006-01-02 15:04 MST"))
	}

	keys := make([]string, 0, len(ev.Payload))
	for k := range ev.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := ev.Payload[k]
		if v == nil || v == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %v\n", k, v)
	}
	return b.String()
}
