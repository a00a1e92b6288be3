package repository

import (
	"context"

	"marketplace-orders/internal/domain/purchase"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/infra/repository/converter"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
)

type PurchaseWriteQueries interface {
	CreatePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePurchaseParams) error
	UpdatePurchaseState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePurchaseStateParams) (int64, error)
}

type PurchaseRepository struct {
	queries PurchaseWriteQueries
	db      sqlc.DBTX
}

func NewPurchaseRepository(queries PurchaseWriteQueries, db sqlc.DBTX) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) error {
	if err := r.queries.CreatePurchase(ctx, tx, converter.PurchaseToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create purchase", err)
	}
	return nil
}

func (r *PurchaseRepository) UpdateState(ctx context.Context, tx sqlc.DBTX, expected purchase.Status, p *purchase.Purchase) error {
	affected, err := r.queries.UpdatePurchaseState(ctx, tx, converter.PurchaseToUpdateStateParams(expected, p))
	if err != nil {
		return infra.WrapRepoErr("failed to update purchase state", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("purchase status changed since it was read", nil, infra.KindConflict)
	}
	return nil
}
