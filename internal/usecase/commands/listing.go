package commands

import (
	"context"

	"marketplace-orders/internal/domain/auth"
	"marketplace-orders/internal/domain/listing"
	"marketplace-orders/internal/pkg/clock"
	"marketplace-orders/internal/usecase/queries"
	"marketplace-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingCommands interface {
	ChangeStatus(ctx context.Context, id uuid.UUID, status string, caller auth.Caller) (*queries.ListingView, error)
}

type listingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, clk clock.Clock) ListingCommands {
	return &listingCommandsImpl{uow: uow, clock: clk}
}

func (uc *listingCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, status string, caller auth.Caller) (*queries.ListingView, error) {
	target, err := listing.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var result *listing.Listing
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().ListingByID(ctx, id)
		if err != nil {
			return err
		}
		if err := current.AuthorizeProvider(caller); err != nil {
			return err
		}
		next, unchanged, err := current.ChangeStatus(target, uc.clock.Now())
		if err != nil {
			return err
		}
		result = next
		if unchanged {
			return nil
		}
		return tx.Listings().UpdateStatus(ctx, tx.DB(), current.Status(), next)
	})
	if err != nil {
		return nil, translate(err, "listing")
	}
	return queries.ListingViewFromSnapshot(result.Snapshot()), nil
}
