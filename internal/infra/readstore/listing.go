package readstore

import (
	"context"

	"marketplace-orders/internal/domain/listing"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/infra/repository/converter"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
	"marketplace-orders/internal/pkg/pgconv"
	"marketplace-orders/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingReadQueries interface {
	GetListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingReadQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	snap, err := r.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	return queries.ListingViewFromSnapshot(snap), nil
}

func (r *ListingReadStore) Aggregate(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	snap, err := r.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	return listing.Reconstruct(snap), nil
}

func (r *ListingReadStore) snapshot(ctx context.Context, id uuid.UUID) (listing.Snapshot, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return listing.Snapshot{}, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return listing.Snapshot{}, infra.WrapRepoErr("failed to find listing by id", err)
	}
	snap, err := converter.ListingFromRow(row)
	if err != nil {
		return listing.Snapshot{}, infra.WrapRepoErr("failed to decode listing row", err, infra.KindDBFailure)
	}
	return snap, nil
}
