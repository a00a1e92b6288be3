//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"marketplace-orders/internal/domain/listing"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/infra/repository"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
	"marketplace-orders/tests/common/builder"
	repositorymock "marketplace-orders/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: status written", affected: 1},
		{name: "error: status changed concurrently", affected: 0, expectKind: infra.KindConflict},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockListingWriteQueries(ctrl)
			tx := &mockDBTX{name: "tx"}
			repo := repository.NewListingRepository(mockQueries, &mockDBTX{name: "pool"})

			l := builder.NewListingBuilder().WithStatus(listing.StatusActive).BuildDomain()

			mockQueries.EXPECT().UpdateListingStatus(ctx, tx, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateListingStatusParams) (int64, error) {
					assert.Equal(t, l.ID(), arg.ID)
					assert.Equal(t, string(listing.StatusDraft), arg.ExpectedStatus)
					assert.Equal(t, string(listing.StatusActive), arg.Status)
					return tc.affected, tc.queryErr
				})

			actualError := repo.UpdateStatus(ctx, tx, listing.StatusDraft, l)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				return
			}
			assert.NoError(t, actualError)
		})
	}
}

func TestListingRepository_DecrementStock(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()

	testCases := []struct {
		name        string
		affected    int64
		queryErr    error
		expected    bool
		expectError bool
	}{
		{name: "success: stock reserved", affected: 1, expected: true},
		{name: "not enough stock left", affected: 0, expected: false},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockListingWriteQueries(ctrl)
			tx := &mockDBTX{name: "tx"}
			repo := repository.NewListingRepository(mockQueries, &mockDBTX{name: "pool"})

			mockQueries.EXPECT().
				DecrementListingStock(ctx, tx, sqlc.DecrementListingStockParams{Quantity: 2, ID: listingID}).
				Return(tc.affected, tc.queryErr)

			ok, err := repo.DecrementStock(ctx, tx, listingID, 2)

			if tc.expectError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestListingRepository_IncrementStock_WithoutTxUsesPool(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockListingWriteQueries(ctrl)
	pool := &mockDBTX{name: "pool"}
	repo := repository.NewListingRepository(mockQueries, pool)

	mockQueries.EXPECT().
		IncrementListingStock(ctx, pool, sqlc.IncrementListingStockParams{Quantity: 3, ID: listingID}).
		Return(int64(1), nil)

	ok, err := repo.IncrementStock(ctx, nil, listingID, 3)
	require.NoError(t, err)
	assert.True(t, ok)
}
