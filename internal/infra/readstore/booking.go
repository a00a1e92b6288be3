package readstore

import (
	"context"

	"marketplace-orders/internal/domain/booking"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/infra/repository/converter"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
	"marketplace-orders/internal/pkg/pgconv"
	"marketplace-orders/internal/usecase/queries"
)

type BookingReadQueries interface {
	GetBookingByReference(ctx context.Context, db sqlc.DBTX, reference string) (sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByReference(ctx context.Context, reference string) (*queries.BookingView, error) {
	snap, err := r.snapshot(ctx, reference)
	if err != nil {
		return nil, err
	}
	return queries.BookingViewFromSnapshot(snap), nil
}

// Aggregate loads the booking for the write side.
func (r *BookingReadStore) Aggregate(ctx context.Context, reference string) (*booking.Booking, error) {
	snap, err := r.snapshot(ctx, reference)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(snap), nil
}

func (r *BookingReadStore) snapshot(ctx context.Context, reference string) (booking.Snapshot, error) {
	row, err := r.queries.GetBookingByReference(ctx, r.db, reference)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.Snapshot{}, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return booking.Snapshot{}, infra.WrapRepoErr("failed to find booking by reference", err)
	}
	snap, err := converter.BookingFromRow(row)
	if err != nil {
		return booking.Snapshot{}, infra.WrapRepoErr("failed to decode booking row", err, infra.KindDBFailure)
	}
	return snap, nil
}
