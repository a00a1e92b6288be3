package commands

import (
	"context"
	"log/slog"

	"marketplace-orders/internal/domain/auth"
	"marketplace-orders/internal/domain/purchase"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/pkg/clock"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/usecase/queries"
	"marketplace-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

type PurchaseCommands interface {
	Create(ctx context.Context, req CreatePurchaseRequest, caller auth.Caller) (*queries.PurchaseView, error)
	Cancel(ctx context.Context, trackingID string, caller auth.Caller) (*queries.PurchaseView, error)
	UpdateStatus(ctx context.Context, trackingID string, status string, caller auth.Caller) (*queries.PurchaseView, error)
}

type CreatePurchaseRequest struct {
	ListingID       uuid.UUID
	Quantity        int32
	BuyerName       string
	BuyerEmail      string
	BuyerPhone      *string
	ShippingAddress *string
	IdempotencyKey  string
}

type purchaseCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.NotificationDispatcher
	clock    clock.Clock
	logger   *slog.Logger
}

func NewPurchaseCommands(uow shared.UnitOfWork, notifier shared.NotificationDispatcher, clk clock.Clock, logger *slog.Logger) PurchaseCommands {
	return &purchaseCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *purchaseCommandsImpl) Create(ctx context.Context, req CreatePurchaseRequest, caller auth.Caller) (*queries.PurchaseView, error) {
	if req.ListingID == uuid.Nil {
		return nil, errs.Validation("listing_id is required")
	}

	var buyerID *uuid.UUID
	if caller.IsAuthenticated() {
		id := caller.Identity.UserID
		buyerID = &id
	}

	payload := req
	payload.IdempotencyKey = ""
	claim, err := newIdempotencyClaim(req.IdempotencyKey, endpointCreatePurchase, caller, req.BuyerEmail, payload)
	if err != nil {
		return nil, err
	}

	var created *purchase.Purchase
	var replayed bool
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			replayed = false
			if claim != nil {
				ref, cerr := claim.acquire(ctx, tx, uc.clock.Now())
				if cerr != nil {
					return cerr
				}
				if ref != "" {
					existing, rerr := tx.Reads().PurchaseByTrackingID(ctx, ref)
					if rerr != nil {
						return rerr
					}
					created, replayed = existing, true
					return nil
				}
			}

			l, lerr := tx.Reads().ListingByID(ctx, req.ListingID)
			if lerr != nil {
				return translate(lerr, "listing")
			}
			if lerr = l.CheckPurchasable(req.Quantity); lerr != nil {
				return lerr
			}

			trackingID, terr := purchase.NewTrackingID()
			if terr != nil {
				return errs.Internal(terr, "failed to generate tracking id")
			}
			p, derr := purchase.NewPurchase(purchase.NewParams{
				TrackingID:      trackingID,
				ListingID:       l.ID(),
				SellerID:        l.ProviderID(),
				BuyerID:         buyerID,
				BuyerName:       req.BuyerName,
				BuyerEmail:      req.BuyerEmail,
				BuyerPhone:      req.BuyerPhone,
				ShippingAddress: req.ShippingAddress,
				Quantity:        req.Quantity,
				UnitPrice:       l.Price(),
				Currency:        l.Currency(),
			}, uc.clock.Now())
			if derr != nil {
				return derr
			}

			if l.TracksStock() {
				ok, serr := tx.Listings().DecrementStock(ctx, tx.DB(), l.ID(), req.Quantity)
				if serr != nil {
					return serr
				}
				if !ok {
					return errs.Conflict("insufficient stock for listing")
				}
			}

			if derr = tx.Purchases().Create(ctx, tx.DB(), p); derr != nil {
				return derr
			}
			if claim != nil {
				if derr = claim.complete(ctx, tx, trackingID); derr != nil {
					return derr
				}
			}
			created = p
			return nil
		})
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			break
		}
	}
	if err != nil {
		return nil, translate(err, "purchase")
	}

	s := created.Snapshot()
	if replayed {
		return queries.PurchaseViewFromSnapshot(s), nil
	}
	uc.notifier.Dispatch(ctx, shared.NotificationEvent{
		Kind:       "purchase",
		RoutingKey: shared.TopicPurchaseCreated,
		Reference:  s.TrackingID,
		Recipient:  s.BuyerEmail,
		Subject:    "Order confirmed: " + s.TrackingID,
		Payload: map[string]any{
			"buyer_name":   s.BuyerName,
			"quantity":     s.Quantity,
			"total_amount": s.TotalAmount.StringFixed(2),
			"currency":     s.Currency,
			"seller_id":    s.SellerID.String(),
		},
		OccurredAt: s.CreatedAt,
	})

	return queries.PurchaseViewFromSnapshot(s), nil
}

func (uc *purchaseCommandsImpl) Cancel(ctx context.Context, trackingID string, caller auth.Caller) (*queries.PurchaseView, error) {
	if err := purchase.ValidateTrackingID(trackingID); err != nil {
		return nil, err
	}

	change, err := uc.apply(ctx, trackingID, func(p *purchase.Purchase) (purchase.Change, error) {
		if err := p.AuthorizeBuyer(caller); err != nil {
			return purchase.Change{}, err
		}
		return p.Cancel(uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	s := change.Next.Snapshot()
	shared.BestEffort(ctx, uc.logger, "restore_stock", []slog.Attr{
		slog.String("tracking_id", s.TrackingID),
		slog.String("listing_id", s.ListingID.String()),
	}, func(ctx context.Context) error {
		_, err := uc.uow.Stock().IncrementStock(ctx, nil, s.ListingID, s.Quantity)
		return err
	})

	uc.notify(ctx, shared.TopicPurchaseCancelled, change)
	return queries.PurchaseViewFromSnapshot(s), nil
}

func (uc *purchaseCommandsImpl) UpdateStatus(ctx context.Context, trackingID string, status string, caller auth.Caller) (*queries.PurchaseView, error) {
	if err := purchase.ValidateTrackingID(trackingID); err != nil {
		return nil, err
	}
	target, err := purchase.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	change, err := uc.apply(ctx, trackingID, func(p *purchase.Purchase) (purchase.Change, error) {
		if err := p.AuthorizeSeller(caller); err != nil {
			return purchase.Change{}, err
		}
		return p.Advance(target, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, shared.TopicPurchaseStatusChanged, change)
	return queries.PurchaseViewFromSnapshot(change.Next.Snapshot()), nil
}

// apply loads the purchase, runs step and persists the result guarded by the
// status step observed.
func (uc *purchaseCommandsImpl) apply(ctx context.Context, trackingID string, step func(*purchase.Purchase) (purchase.Change, error)) (purchase.Change, error) {
	var change purchase.Change
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().PurchaseByTrackingID(ctx, trackingID)
		if err != nil {
			return err
		}
		change, err = step(current)
		if err != nil {
			return err
		}
		return tx.Purchases().UpdateState(ctx, tx.DB(), change.From, change.Next)
	})
	if err != nil {
		return purchase.Change{}, translate(err, "purchase")
	}
	return change, nil
}

func (uc *purchaseCommandsImpl) notify(ctx context.Context, topic string, change purchase.Change) {
	s := change.Next.Snapshot()
	uc.notifier.Dispatch(ctx, shared.NotificationEvent{
		Kind:       "purchase",
		RoutingKey: topic,
		Reference:  s.TrackingID,
		Recipient:  s.BuyerEmail,
		Subject:    "Order " + s.TrackingID + " is now " + string(s.Status),
		Payload: map[string]any{
			"from": string(change.From),
			"to":   string(s.Status),
		},
		OccurredAt: s.UpdatedAt,
	})
}
