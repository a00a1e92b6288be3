package queries

import (
	"context"

	"marketplace-orders/internal/domain/purchase"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/pkg/errs"
)

type PurchaseReadStore interface {
	FindByTrackingID(ctx context.Context, trackingID string) (*PurchaseView, error)
}

type PurchaseQueries interface {
	GetByTrackingID(ctx context.Context, trackingID string) (*PurchaseView, error)
}

type purchaseQueriesImpl struct {
	store PurchaseReadStore
}

func NewPurchaseQueries(store PurchaseReadStore) PurchaseQueries {
	return &purchaseQueriesImpl{store: store}
}

func (q *purchaseQueriesImpl) GetByTrackingID(ctx context.Context, trackingID string) (*PurchaseView, error) {
	if err := purchase.ValidateTrackingID(trackingID); err != nil {
		return nil, err
	}
	view, err := q.store.FindByTrackingID(ctx, trackingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("purchase not found")
		}
		return nil, errs.Internal(err, "failed to load purchase")
	}
	return view, nil
}
