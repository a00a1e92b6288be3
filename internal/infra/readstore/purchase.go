package readstore

import (
	"context"

	"marketplace-orders/internal/domain/purchase"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/infra/repository/converter"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
	"marketplace-orders/internal/pkg/pgconv"
	"marketplace-orders/internal/usecase/queries"
)

type PurchaseReadQueries interface {
	GetPurchaseByTrackingID(ctx context.Context, db sqlc.DBTX, trackingID string) (sqlc.Purchases, error)
}

type PurchaseReadStore struct {
	queries PurchaseReadQueries
	db      sqlc.DBTX
}

func NewPurchaseReadStore(queries PurchaseReadQueries, db sqlc.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseReadStore) FindByTrackingID(ctx context.Context, trackingID string) (*queries.PurchaseView, error) {
	snap, err := r.snapshot(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	return queries.PurchaseViewFromSnapshot(snap), nil
}

func (r *PurchaseReadStore) Aggregate(ctx context.Context, trackingID string) (*purchase.Purchase, error) {
	snap, err := r.snapshot(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	return purchase.Reconstruct(snap), nil
}

func (r *PurchaseReadStore) snapshot(ctx context.Context, trackingID string) (purchase.Snapshot, error) {
	row, err := r.queries.GetPurchaseByTrackingID(ctx, r.db, trackingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return purchase.Snapshot{}, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return purchase.Snapshot{}, infra.WrapRepoErr("failed to find purchase by tracking id", err)
	}
	snap, err := converter.PurchaseFromRow(row)
	if err != nil {
		return purchase.Snapshot{}, infra.WrapRepoErr("failed to decode purchase row", err, infra.KindDBFailure)
	}
	return snap, nil
}
