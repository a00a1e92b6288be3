//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"marketplace-orders/internal/domain/listing"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/infra/readstore"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
	"marketplace-orders/internal/pkg/pgconv"
	readstoremock "marketplace-orders/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: stock and features are mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewListingReadStore(mockQueries, mockDB)

		row := sqlc.Listings{
			ID:            uuid.New(),
			ProviderID:    uuid.New(),
			ListingType:   string(listing.TypeProduct),
			Status:        string(listing.StatusActive),
			Title:         "Handmade oak table",
			Features:      []string{"solid oak", "seats six", "oil finish"},
			Price:         pgconv.NumericFromDecimal(decimal.RequireFromString("499.00")),
			Currency:      "EUR",
			StockQuantity: pgtype.Int4{Int32: 4, Valid: true},
			CreatedAt:     pgconv.TimeToPgtype(fixedTime),
			UpdatedAt:     pgconv.TimeToPgtype(fixedTime),
		}
		mockQueries.EXPECT().GetListingByID(ctx, mockDB, row.ID).Return(row, nil)

		view, err := store.FindByID(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, "product", view.ListingType)
		assert.Equal(t, row.Features, view.Features)
		require.NotNil(t, view.StockQuantity)
		assert.Equal(t, int32(4), *view.StockQuantity)
		assert.True(t, decimal.RequireFromString("499").Equal(view.Price))
	})

	t.Run("error: listing not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewListingReadStore(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetListingByID(ctx, mockDB, id).Return(sqlc.Listings{}, pgx.ErrNoRows)

		view, err := store.FindByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})
}
