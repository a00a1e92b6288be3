package queries

import (
	"context"

	"marketplace-orders/internal/domain/booking"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/pkg/errs"
)

type BookingReadStore interface {
	FindByReference(ctx context.Context, reference string) (*BookingView, error)
}

type BookingQueries interface {
	GetByReference(ctx context.Context, reference string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByReference(ctx context.Context, reference string) (*BookingView, error) {
	if err := booking.ValidateReference(reference); err != nil {
		return nil, err
	}
	view, err := q.store.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("booking not found")
		}
		return nil, errs.Internal(err, "failed to load booking")
	}
	return view, nil
}
