//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/usecase/commands"
	"marketplace-orders/internal/usecase/shared"
	sharedmock "marketplace-orders/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func parkedJob(t *testing.T, attempts int32) shared.NotificationJob {
	t.Helper()
	payload, err := json.Marshal(shared.NotificationEvent{
		Kind:       "booking",
		RoutingKey: shared.TopicBookingCreated,
		Reference:  "BMC-BOOK-TEST01",
		Recipient:  "ada@example.com",
	})
	require.NoError(t, err)
	return shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     "booking",
		Topic:    shared.TopicBookingCreated,
		Payload:  payload,
		RunAt:    testNow.Add(-time.Minute),
		Attempts: attempts,
	}
}

func TestNotificationRelay_RunOnce(t *testing.T) {
	ctx := context.Background()
	opts := commands.RelayOptions{BatchSize: 10, MaxAttempts: 3, RetryDelay: 30 * time.Second}

	t.Run("success: each job is marked by its outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newHarness(ctrl)
		notifier := sharedmock.NewMockNotifier(ctrl)

		sent := parkedJob(t, 0)
		retried := parkedJob(t, 1)
		exhausted := parkedJob(t, 2)
		garbage := shared.NotificationJob{ID: uuid.New(), Payload: []byte("{not json")}

		h.notifications.EXPECT().PendingJobs(gomock.Any(), gomock.Any(), testNow, int32(10)).
			Return([]shared.NotificationJob{sent, retried, exhausted, garbage}, nil)

		brokerDown := errors.New("broker unavailable")
		gomock.InOrder(
			notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, ev shared.NotificationEvent) error {
					assert.Equal(t, "BMC-BOOK-TEST01", ev.Reference)
					return nil
				}),
			notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(brokerDown),
			notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(brokerDown),
		)

		h.notifications.EXPECT().MarkJob(gomock.Any(), gomock.Any(), sent.ID, shared.JobSent, nil, testNow).Return(nil)
		h.notifications.EXPECT().MarkJob(gomock.Any(), gomock.Any(), retried.ID, shared.JobPending, gomock.Not(gomock.Nil()), testNow.Add(time.Minute)).Return(nil)
		h.notifications.EXPECT().MarkJob(gomock.Any(), gomock.Any(), exhausted.ID, shared.JobFailed, gomock.Not(gomock.Nil()), testNow).Return(nil)
		h.notifications.EXPECT().MarkJob(gomock.Any(), gomock.Any(), garbage.ID, shared.JobFailed, gomock.Not(gomock.Nil()), testNow).Return(nil)

		res, err := commands.NewNotificationRelay(h.uow, notifier, h.clock, h.logger, opts).RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, commands.RelayResult{Sent: 1, Retried: 1, Failed: 2}, res)
	})

	t.Run("success: nothing due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newHarness(ctrl)
		notifier := sharedmock.NewMockNotifier(ctrl)

		h.notifications.EXPECT().PendingJobs(gomock.Any(), gomock.Any(), testNow, int32(50)).Return(nil, nil)

		res, err := commands.NewNotificationRelay(h.uow, notifier, h.clock, h.logger, commands.RelayOptions{}).RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, commands.RelayResult{}, res)
	})

	t.Run("error: jobs cannot be loaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newHarness(ctrl)
		notifier := sharedmock.NewMockNotifier(ctrl)

		h.notifications.EXPECT().PendingJobs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to load pending notification jobs", errors.New("connection reset")))

		_, err := commands.NewNotificationRelay(h.uow, notifier, h.clock, h.logger, opts).RunOnce(ctx)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInternal), "got %v", err)
	})
}
