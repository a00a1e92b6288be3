package repository

import (
	"context"

	"marketplace-orders/internal/domain/booking"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/infra/repository/converter"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBookingState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStateParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateState(ctx context.Context, tx sqlc.DBTX, expected booking.Status, b *booking.Booking) error {
	affected, err := r.queries.UpdateBookingState(ctx, tx, converter.BookingToUpdateStateParams(expected, b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking state", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking status changed since it was read", nil, infra.KindConflict)
	}
	return nil
}
