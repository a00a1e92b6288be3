//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/usecase/queries"
	"marketplace-orders/tests/common/builder"
	queriesmock "marketplace-orders/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	notFound = infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
	dbDown   = infra.WrapRepoErr("query failed", errors.New("connection reset"))
)

func TestBookingQueries_GetByReference(t *testing.T) {
	ctx := context.Background()
	view := builder.NewBookingBuilder().BuildView()

	testCases := []struct {
		name      string
		reference string
		setup     func(*queriesmock.MockBookingReadStore)
		expected  *queries.BookingView
		errIs     error
	}{
		{
			name:      "success: booking found",
			reference: view.Reference,
			setup: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByReference(ctx, view.Reference).Return(view, nil)
			},
			expected: view,
		},
		{
			name:      "error: malformed reference never reaches the store",
			reference: "BMC-BOOK-bad",
			setup:     func(*queriesmock.MockBookingReadStore) {},
			errIs:     errs.ErrValidation,
		},
		{
			name:      "error: booking not found",
			reference: view.Reference,
			setup: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByReference(ctx, view.Reference).Return(nil, notFound)
			},
			errIs: errs.ErrNotFound,
		},
		{
			name:      "error: store failure",
			reference: view.Reference,
			setup: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByReference(ctx, view.Reference).Return(nil, dbDown)
			},
			errIs: errs.ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			tc.setup(store)

			actual, err := queries.NewBookingQueries(store).GetByReference(ctx, tc.reference)
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestPurchaseQueries_GetByTrackingID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewPurchaseBuilder().BuildView()

	t.Run("success: purchase found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		store.EXPECT().FindByTrackingID(ctx, view.TrackingID).Return(view, nil)

		actual, err := queries.NewPurchaseQueries(store).GetByTrackingID(ctx, view.TrackingID)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("error: malformed tracking id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)

		_, err := queries.NewPurchaseQueries(store).GetByTrackingID(ctx, "TRK-1")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("error: purchase not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		store.EXPECT().FindByTrackingID(ctx, view.TrackingID).Return(nil, notFound)

		_, err := queries.NewPurchaseQueries(store).GetByTrackingID(ctx, view.TrackingID)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestListingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewListingBuilder().BuildView()

	t.Run("success: listing found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		actual, err := queries.NewListingQueries(store).GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("error: listing not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, notFound)

		_, err := queries.NewListingQueries(store).GetByID(ctx, id)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("error: store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, dbDown)

		_, err := queries.NewListingQueries(store).GetByID(ctx, id)
		assert.True(t, errs.Is(err, errs.ErrInternal))
	})
}
