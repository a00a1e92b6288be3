package booking

import (
	"slices"

	"marketplace-orders/internal/pkg/errs"
)

type Status string

const (
	StatusPending                       Status = "pending"
	StatusConfirmed                     Status = "confirmed"
	StatusCompleted                     Status = "completed"
	StatusCancelled                     Status = "cancelled"
	StatusClientCancellationRequested   Status = "client_cancellation_requested"
	StatusProviderCancellationRequested Status = "provider_cancellation_requested"
)

// transitions is the single source of truth for legal status changes.
var transitions = map[Status][]Status{
	StatusPending:                       {StatusConfirmed, StatusCancelled},
	StatusConfirmed:                     {StatusCompleted, StatusCancelled},
	StatusClientCancellationRequested:   {StatusCancelled, StatusConfirmed},
	StatusProviderCancellationRequested: {StatusCancelled, StatusConfirmed},
	StatusCompleted:                     {},
	StatusCancelled:                     {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

func (s Status) IsCancellationRequested() bool {
	return s == StatusClientCancellationRequested || s == StatusProviderCancellationRequested
}

func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(transitions[s], target)
}

// AllowedTargets returns a copy of the outgoing edges of s.
func (s Status) AllowedTargets() []Status {
	return slices.Clone(transitions[s])
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", errs.Validation("invalid booking status %q", s)
	}
	return st, nil
}

// AllStatuses lists every status in declaration order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusCompleted,
		StatusCancelled,
		StatusClientCancellationRequested,
		StatusProviderCancellationRequested,
	}
}

type Actor string

const (
	ActorClient   Actor = "client"
	ActorProvider Actor = "provider"
	ActorSystem   Actor = "system"
)

func (a Actor) String() string {
	return string(a)
}

func (a Actor) IsValid() bool {
	switch a {
	case ActorClient, ActorProvider, ActorSystem:
		return true
	default:
		return false
	}
}

func ParseActor(s string) (Actor, error) {
	a := Actor(s)
	if !a.IsValid() {
		return "", errs.Validation("invalid actor %q", s)
	}
	return a, nil
}

// requestStatus is the status a booking moves to when a party asks to cancel it.
func (a Actor) requestStatus() (Status, bool) {
	switch a {
	case ActorClient:
		return StatusClientCancellationRequested, true
	case ActorProvider:
		return StatusProviderCancellationRequested, true
	default:
		return "", false
	}
}

// SameStatusPolicy decides how a status PATCH to the current status is treated.
type SameStatusPolicy string

const (
	SameStatusReject SameStatusPolicy = "reject"
	SameStatusNoop   SameStatusPolicy = "noop"
)

func ParseSameStatusPolicy(s string) (SameStatusPolicy, error) {
	switch p := SameStatusPolicy(s); p {
	case SameStatusReject, SameStatusNoop:
		return p, nil
	case "":
		return SameStatusReject, nil
	default:
		return "", errs.Newf("unknown same-status policy %q", s)
	}
}
