//go:build unit

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.msg = msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := shared.NotificationEvent{
		Kind:       "booking",
		RoutingKey: shared.TopicBookingCreated,
		Reference:  "BMC-BOOK-ABC123",
		Recipient:  "client@example.com",
		Subject:    "Booking request received",
		OccurredAt: at,
	}

	t.Run("publishes persistent json under the event routing key", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{ch: ch, exchange: "marketplace.events"}

		require.NoError(t, p.Publish(context.Background(), ev))

		assert.Equal(t, "marketplace.events", ch.exchange)
		assert.Equal(t, shared.TopicBookingCreated, ch.key)
		assert.Equal(t, "application/json", ch.msg.ContentType)
		assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
		assert.Equal(t, "booking", ch.msg.Type)

		var decoded shared.NotificationEvent
		require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
		assert.Equal(t, ev.Reference, decoded.Reference)
		assert.True(t, decoded.OccurredAt.Equal(at))
	})

	t.Run("returns channel errors", func(t *testing.T) {
		closed := errors.New("channel closed")
		ch := &fakeChannel{err: closed}
		p := &Publisher{ch: ch, exchange: "marketplace.events"}

		err := p.Publish(context.Background(), ev)
		require.Error(t, err)
		assert.True(t, errs.Is(err, closed))
		assert.Contains(t, err.Error(), "publish "+shared.TopicBookingCreated)
	})

	t.Run("fails after close", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{ch: ch, exchange: "marketplace.events"}

		require.NoError(t, p.Close())
		assert.True(t, ch.closed)
		assert.Error(t, p.Publish(context.Background(), ev))
	})
}
