//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/infra/repository"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
	"marketplace-orders/internal/pkg/pgconv"
	"marketplace-orders/internal/usecase/shared"
	repositorymock "marketplace-orders/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	tx := &mockDBTX{name: "tx"}
	repo := repository.NewNotificationRepository(mockQueries, tx)

	mockQueries.EXPECT().CreateNotificationJob(ctx, tx, sqlc.CreateNotificationJobParams{
		Kind:    "booking",
		Topic:   shared.TopicBookingCreated,
		Payload: []byte(`{"reference":"BMC-BOOK-TEST01"}`),
		RunAt:   pgconv.TimeToPgtype(runAt),
	}).Return(nil)

	err := repo.CreateJob(ctx, tx, "booking", shared.TopicBookingCreated, []byte(`{"reference":"BMC-BOOK-TEST01"}`), runAt)
	assert.NoError(t, err)
}

func TestNotificationRepository_PendingJobs(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("success: rows are mapped to jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		tx := &mockDBTX{name: "tx"}
		repo := repository.NewNotificationRepository(mockQueries, tx)

		id := uuid.New()
		mockQueries.EXPECT().
			GetPendingNotificationJobs(ctx, tx, sqlc.GetPendingNotificationJobsParams{Now: pgconv.TimeToPgtype(now), BatchSize: 10}).
			Return([]sqlc.NotificationJobs{{
				ID:       id,
				Kind:     "purchase",
				Topic:    shared.TopicPurchaseCreated,
				Payload:  []byte(`{}`),
				RunAt:    pgconv.TimeToPgtype(now.Add(-time.Minute)),
				Attempts: 2,
				Status:   string(shared.JobPending),
			}}, nil)

		jobs, err := repo.PendingJobs(ctx, tx, now, 10)
		require.NoError(t, err)

		expected := []shared.NotificationJob{{
			ID:       id,
			Kind:     "purchase",
			Topic:    shared.TopicPurchaseCreated,
			Payload:  []byte(`{}`),
			RunAt:    now.Add(-time.Minute),
			Attempts: 2,
		}}
		if diff := cmp.Diff(expected, jobs); diff != "" {
			t.Errorf("jobs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		tx := &mockDBTX{name: "tx"}
		repo := repository.NewNotificationRepository(mockQueries, tx)

		mockQueries.EXPECT().GetPendingNotificationJobs(ctx, tx, gomock.Any()).Return(nil, errors.New("database connection error"))

		jobs, err := repo.PendingJobs(ctx, tx, now, 10)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, jobs)
	})
}

func TestNotificationRepository_MarkJob(t *testing.T) {
	ctx := context.Background()
	next := time.Date(2026, 3, 14, 10, 5, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	tx := &mockDBTX{name: "tx"}
	repo := repository.NewNotificationRepository(mockQueries, tx)

	id := uuid.New()
	lastErr := "broker unavailable"
	mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, tx, sqlc.UpdateNotificationJobStatusParams{
		ID:        id,
		Status:    string(shared.JobPending),
		LastError: pgconv.StringPtrToPgtype(&lastErr),
		RunAt:     pgconv.TimeToPgtype(next),
	}).Return(nil)

	assert.NoError(t, repo.MarkJob(ctx, tx, id, shared.JobPending, &lastErr, next))
}
