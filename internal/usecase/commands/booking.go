package commands

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace-orders/internal/domain/auth"
	"marketplace-orders/internal/domain/booking"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/pkg/clock"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/pkg/ptr"
	"marketplace-orders/internal/usecase/queries"
	"marketplace-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxReferenceAttempts bounds retries on reference collisions.
const maxReferenceAttempts = 5

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, caller auth.Caller) (*queries.BookingView, error)
	ChangeStatus(ctx context.Context, reference string, req ChangeBookingStatusRequest, caller auth.Caller) (*queries.BookingView, error)
	RequestCancellation(ctx context.Context, reference string, req RequestCancellationRequest, caller auth.Caller) (*queries.BookingView, error)
	ResolveCancellation(ctx context.Context, reference string, req ResolveCancellationRequest, caller auth.Caller) (*queries.BookingView, error)
}

type CreateBookingRequest struct {
	ListingID          uuid.UUID
	ProjectTitle       string
	ProjectDescription *string
	PreferredDate      *time.Time
	ClientName         string
	ClientEmail        string
	ClientPhone        *string
	IdempotencyKey     string
}

type ChangeBookingStatusRequest struct {
	Status             string
	ProviderResponse   *string
	CancellationReason *string
	CancelledBy        *string
}

type RequestCancellationRequest struct {
	Actor  string
	Reason string
}

type ResolveCancellationRequest struct {
	Resolution       string
	ResolutionNotes  *string
	ProviderResponse *string
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	machine  booking.StateMachine
	notifier shared.NotificationDispatcher
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, machine booking.StateMachine, notifier shared.NotificationDispatcher, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		machine:  machine,
		notifier: notifier,
		clock:    clk,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest, caller auth.Caller) (*queries.BookingView, error) {
	if req.ListingID == uuid.Nil {
		return nil, errs.Validation("listing_id is required")
	}

	var clientID *uuid.UUID
	if caller.IsAuthenticated() {
		id := caller.Identity.UserID
		clientID = &id
	}

	payload := req
	payload.IdempotencyKey = ""
	claim, err := newIdempotencyClaim(req.IdempotencyKey, endpointCreateBooking, caller, req.ClientEmail, payload)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
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
					existing, rerr := tx.Reads().BookingByReference(ctx, ref)
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
			if lerr = l.CheckBookable(); lerr != nil {
				return lerr
			}

			ref, rerr := booking.NewReference()
			if rerr != nil {
				return errs.Internal(rerr, "failed to generate booking reference")
			}
			b, derr := booking.NewBooking(booking.NewParams{
				Reference:          ref,
				ListingID:          l.ID(),
				ProviderID:         l.ProviderID(),
				ClientID:           clientID,
				ClientName:         req.ClientName,
				ClientEmail:        req.ClientEmail,
				ClientPhone:        req.ClientPhone,
				ProjectTitle:       req.ProjectTitle,
				ProjectDescription: req.ProjectDescription,
				PreferredDate:      req.PreferredDate,
				Amount:             l.Price(),
				Currency:           l.Currency(),
			}, uc.clock.Now())
			if derr != nil {
				return derr
			}

			if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
				return derr
			}
			if claim != nil {
				if derr = claim.complete(ctx, tx, ref); derr != nil {
					return derr
				}
			}
			created = b
			return nil
		})
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			break
		}
	}
	if err != nil {
		return nil, translate(err, "booking")
	}

	s := created.Snapshot()
	if replayed {
		return queries.BookingViewFromSnapshot(s), nil
	}
	uc.notifier.Dispatch(ctx, shared.NotificationEvent{
		Kind:       "booking",
		RoutingKey: shared.TopicBookingCreated,
		Reference:  s.Reference,
		Recipient:  s.ClientEmail,
		Subject:    "Booking request received: " + s.ProjectTitle,
		Payload: map[string]any{
			"client_name":   s.ClientName,
			"project_title": s.ProjectTitle,
			"amount":        s.Amount.StringFixed(2),
			"currency":      s.Currency,
			"provider_id":   s.ProviderID.String(),
		},
		OccurredAt: s.CreatedAt,
	})

	return queries.BookingViewFromSnapshot(s), nil
}

func (uc *bookingCommandsImpl) ChangeStatus(ctx context.Context, reference string, req ChangeBookingStatusRequest, caller auth.Caller) (*queries.BookingView, error) {
	if err := booking.ValidateReference(reference); err != nil {
		return nil, err
	}
	target, err := booking.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	cancelledBy := booking.ActorProvider
	if req.CancelledBy != nil && strings.TrimSpace(*req.CancelledBy) != "" {
		if cancelledBy, err = booking.ParseActor(*req.CancelledBy); err != nil {
			return nil, err
		}
		if cancelledBy == booking.ActorSystem {
			return nil, errs.Validation("cancelledBy must be client or provider")
		}
	}

	return uc.transition(ctx, reference, shared.TopicBookingStatusChanged, func(b *booking.Booking) (booking.Command, error) {
		if err := b.AuthorizeProvider(caller); err != nil {
			return nil, err
		}
		return booking.ChangeStatus{
			Target:             target,
			ProviderResponse:   req.ProviderResponse,
			CancellationReason: req.CancellationReason,
			CancelledBy:        cancelledBy,
			At:                 uc.clock.Now(),
		}, nil
	})
}

func (uc *bookingCommandsImpl) RequestCancellation(ctx context.Context, reference string, req RequestCancellationRequest, caller auth.Caller) (*queries.BookingView, error) {
	if err := booking.ValidateReference(reference); err != nil {
		return nil, err
	}
	actor, err := booking.ParseActor(req.Actor)
	if err != nil {
		return nil, err
	}
	if actor == booking.ActorSystem {
		return nil, errs.Validation("actor must be client or provider")
	}
	if utf8.RuneCountInString(req.Reason) > booking.MaxReasonLength {
		return nil, errs.Validation("reason must be at most %d characters", booking.MaxReasonLength)
	}

	return uc.transition(ctx, reference, shared.TopicBookingCancellationRequested, func(b *booking.Booking) (booking.Command, error) {
		if err := b.AuthorizeActor(caller, actor); err != nil {
			return nil, err
		}
		return booking.RequestCancellation{
			Actor:  actor,
			Reason: req.Reason,
			At:     uc.clock.Now(),
		}, nil
	})
}

func (uc *bookingCommandsImpl) ResolveCancellation(ctx context.Context, reference string, req ResolveCancellationRequest, caller auth.Caller) (*queries.BookingView, error) {
	if err := booking.ValidateReference(reference); err != nil {
		return nil, err
	}
	target, err := booking.ParseStatus(req.Resolution)
	if err != nil {
		return nil, err
	}

	return uc.transition(ctx, reference, shared.TopicBookingStatusChanged, func(b *booking.Booking) (booking.Command, error) {
		actor, err := b.AuthorizeResolution(caller, target)
		if err != nil {
			return nil, err
		}
		return booking.ResolveCancellation{
			Target:           target,
			ResolutionNotes:  req.ResolutionNotes,
			CancelledBy:      actor,
			ProviderResponse: req.ProviderResponse,
			At:               uc.clock.Now(),
		}, nil
	})
}

// transition loads the booking, lets build authorize the caller and produce a
// command, then writes the patch guarded by the status it was validated against.
func (uc *bookingCommandsImpl) transition(ctx context.Context, reference, topic string, build func(*booking.Booking) (booking.Command, error)) (*queries.BookingView, error) {
	var (
		next  *booking.Booking
		patch booking.Patch
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().BookingByReference(ctx, reference)
		if err != nil {
			return err
		}
		cmd, err := build(current)
		if err != nil {
			return err
		}
		patch, err = uc.machine.Transition(current.State(), cmd)
		if err != nil {
			return err
		}
		next = current.Apply(patch)
		if patch.NoOp {
			return nil
		}
		return tx.Bookings().UpdateState(ctx, tx.DB(), patch.From, next)
	})
	if err != nil {
		return nil, translate(err, "booking")
	}

	s := next.Snapshot()
	if !patch.NoOp {
		uc.notifier.Dispatch(ctx, shared.NotificationEvent{
			Kind:       "booking",
			RoutingKey: topic,
			Reference:  s.Reference,
			Recipient:  s.ClientEmail,
			Subject:    "Booking " + s.Reference + " is now " + string(s.Status),
			Payload: map[string]any{
				"from":   string(patch.From),
				"to":     string(patch.To),
				"reason": ptr.Value(s.CancellationRequestReason),
			},
			OccurredAt: patch.At,
		})
	}
	return queries.BookingViewFromSnapshot(s), nil
}
