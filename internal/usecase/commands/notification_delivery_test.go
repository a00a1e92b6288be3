//go:build unit

package commands_test

import (
	"context"
	"testing"

	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/usecase/commands"
	"marketplace-orders/internal/usecase/shared"
	sharedmock "marketplace-orders/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationDelivery_Deliver(t *testing.T) {
	ctx := context.Background()

	t.Run("success: payload is rendered in key order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := sharedmock.NewMockMailer(ctrl)

		mailer.EXPECT().Send(gomock.Any(), shared.Mail{
			To:      "ada@example.com",
			Subject: "Booking BMC-BOOK-TEST01 is now confirmed",
			Body: "Reference: BMC-BOOK-TEST01\n" +
				"Event: booking.status_changed\n" +
				"At: 2026-03-14 10:00 UTC\n" +
				"from: pending\n" +
				"to: confirmed\n",
		}).Return(nil)

		err := commands.NewNotificationDelivery(mailer).Deliver(ctx, shared.NotificationEvent{
			Kind:       "booking",
			RoutingKey: shared.TopicBookingStatusChanged,
			Reference:  "BMC-BOOK-TEST01",
			Recipient:  "ada@example.com",
			Subject:    "Booking BMC-BOOK-TEST01 is now confirmed",
			Payload:    map[string]any{"to": "confirmed", "from": "pending", "reason": ""},
			OccurredAt: testNow,
		})
		assert.NoError(t, err)
	})

	t.Run("success: subject falls back to the reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := sharedmock.NewMockMailer(ctrl)

		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m shared.Mail) error {
				assert.Equal(t, "Update on BMC-TEST01", m.Subject)
				return nil
			})

		err := commands.NewNotificationDelivery(mailer).Deliver(ctx, shared.NotificationEvent{
			RoutingKey: shared.TopicPurchaseCreated,
			Reference:  "BMC-TEST01",
			Recipient:  "bo@example.com",
		})
		assert.NoError(t, err)
	})

	t.Run("error: no recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := sharedmock.NewMockMailer(ctrl)

		err := commands.NewNotificationDelivery(mailer).Deliver(ctx, shared.NotificationEvent{Reference: "BMC-TEST01"})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
