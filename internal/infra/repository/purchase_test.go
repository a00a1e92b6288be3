//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"marketplace-orders/internal/domain/purchase"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/infra/repository"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
	"marketplace-orders/tests/common/builder"
	repositorymock "marketplace-orders/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPurchaseRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: purchase created"},
		{name: "error: tracking id collision", queryErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPurchaseWriteQueries(ctrl)
			tx := &mockDBTX{name: "tx"}
			repo := repository.NewPurchaseRepository(mockQueries, tx)

			p, err := builder.NewPurchaseBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreatePurchase(ctx, tx, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePurchaseParams) error {
					assert.Equal(t, p.TrackingID(), arg.TrackingID)
					return tc.queryErr
				})

			actualError := repo.Create(ctx, tx, p)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				return
			}
			assert.NoError(t, actualError)
		})
	}
}

func TestPurchaseRepository_UpdateState(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: guarded update applied", affected: 1},
		{name: "error: status changed concurrently", expectKind: infra.KindConflict},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPurchaseWriteQueries(ctrl)
			tx := &mockDBTX{name: "tx"}
			repo := repository.NewPurchaseRepository(mockQueries, tx)

			p := builder.NewPurchaseBuilder().WithStatus(purchase.StatusCancelled).BuildReconstructed()

			mockQueries.EXPECT().UpdatePurchaseState(ctx, tx, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdatePurchaseStateParams) (int64, error) {
					assert.Equal(t, string(purchase.StatusPending), arg.ExpectedStatus)
					assert.Equal(t, string(purchase.StatusCancelled), arg.Status)
					return tc.affected, tc.queryErr
				})

			actualError := repo.UpdateState(ctx, tx, purchase.StatusPending, p)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				return
			}
			assert.NoError(t, actualError)
		})
	}
}
