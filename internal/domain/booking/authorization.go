package booking

import (
	"marketplace-orders/internal/domain/auth"
	"marketplace-orders/internal/pkg/errs"
)

// AuthorizeProvider requires the caller to be the booking's provider.
func (b *Booking) AuthorizeProvider(c auth.Caller) error {
	if !c.IsAuthenticated() {
		return errs.Unauthorized("authentication required")
	}
	if !c.Is(b.s.ProviderID) {
		return errs.Forbidden("only the provider of this booking can perform this action")
	}
	return nil
}

// AuthorizeClient accepts the owning user when client_id is set, otherwise a
// case-insensitive match on the booking's client email.
func (b *Booking) AuthorizeClient(c auth.Caller) error {
	if b.s.ClientID != nil {
		if !c.IsAuthenticated() {
			return errs.Unauthorized("authentication required")
		}
		if !c.Is(*b.s.ClientID) {
			return errs.Forbidden("only the client of this booking can perform this action")
		}
		return nil
	}
	if !c.EmailMatches(b.s.ClientEmail) {
		return errs.Forbidden("client email does not match this booking")
	}
	return nil
}

// AuthorizeActor checks the caller may act as the given party.
func (b *Booking) AuthorizeActor(c auth.Caller, actor Actor) error {
	switch actor {
	case ActorProvider:
		return b.AuthorizeProvider(c)
	case ActorClient:
		return b.AuthorizeClient(c)
	default:
		return errs.Validation("actor must be client or provider")
	}
}

// AuthorizeResolution lets the provider resolve to any target. The client may
// only resolve an open cancellation request, and only to cancelled or confirmed.
func (b *Booking) AuthorizeResolution(c auth.Caller, target Status) (Actor, error) {
	providerErr := b.AuthorizeProvider(c)
	if providerErr == nil {
		return ActorProvider, nil
	}
	if target == StatusCompleted {
		return "", providerErr
	}
	if !b.s.Status.IsCancellationRequested() {
		if !c.IsAuthenticated() && c.ClaimedEmail == "" {
			return "", errs.Unauthorized("authentication required")
		}
		return "", errs.Forbidden("only the provider can resolve a booking without an open cancellation request")
	}
	if clientErr := b.AuthorizeClient(c); clientErr != nil {
		if !c.IsAuthenticated() && c.ClaimedEmail == "" {
			return "", errs.Unauthorized("authentication required")
		}
		return "", clientErr
	}
	return ActorClient, nil
}
