package repository

import (
	"context"

	"marketplace-orders/internal/domain/listing"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/infra/repository/converter"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	UpdateListingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingStatusParams) (int64, error)
	DecrementListingStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementListingStockParams) (int64, error)
	IncrementListingStock(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementListingStockParams) (int64, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
	db      sqlc.DBTX
}

func NewListingRepository(queries ListingWriteQueries, db sqlc.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, expected listing.Status, l *listing.Listing) error {
	affected, err := r.queries.UpdateListingStatus(ctx, r.conn(tx), converter.ListingToUpdateStatusParams(expected, l))
	if err != nil {
		return infra.WrapRepoErr("failed to update listing status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("listing status changed since it was read", nil, infra.KindConflict)
	}
	return nil
}

func (r *ListingRepository) DecrementStock(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, quantity int32) (bool, error) {
	affected, err := r.queries.DecrementListingStock(ctx, r.conn(tx), sqlc.DecrementListingStockParams{Quantity: quantity, ID: listingID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement listing stock", err)
	}
	return affected > 0, nil
}

func (r *ListingRepository) IncrementStock(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, quantity int32) (bool, error) {
	affected, err := r.queries.IncrementListingStock(ctx, r.conn(tx), sqlc.IncrementListingStockParams{Quantity: quantity, ID: listingID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment listing stock", err)
	}
	return affected > 0, nil
}

// conn falls back to the repository's own handle when no transaction is given.
func (r *ListingRepository) conn(tx sqlc.DBTX) sqlc.DBTX {
	if tx == nil {
		return r.db
	}
	return tx
}
