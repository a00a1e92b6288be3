package booking

import (
	"strings"
	"time"

	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/pkg/patch"
)

// State is the part of a booking the transition rules read.
type State struct {
	Status                    Status
	CancellationRequestedAt   *time.Time
	CancellationRequestReason *string
}

// Command is one of ChangeStatus, RequestCancellation or ResolveCancellation.
type Command interface {
	issuedAt() time.Time
}

// ChangeStatus moves a booking along the transition table (PATCH /bookings/{reference}).
type ChangeStatus struct {
	Target             Status
	ProviderResponse   *string
	CancellationReason *string
	CancelledBy        Actor
	At                 time.Time
}

// RequestCancellation opens a cancellation request on behalf of Actor.
type RequestCancellation struct {
	Actor  Actor
	Reason string
	At     time.Time
}

// ResolveCancellation closes the booking lifecycle or withdraws a pending request.
type ResolveCancellation struct {
	Target           Status
	ResolutionNotes  *string
	CancelledBy      Actor
	ProviderResponse *string
	At               time.Time
}

func (c ChangeStatus) issuedAt() time.Time { return c.At }
func (c RequestCancellation) issuedAt() time.Time { return c.At }
func (c ResolveCancellation) issuedAt() time.Time { return c.At }

// Field is a patch slot. Set=false leaves the stored value untouched.
type Field[T any] struct {
	Set   bool
	Value T
}

func setTo[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

func (f Field[T]) applyTo(dst *T) {
	if f.Set {
		*dst = f.Value
	}
}

// Patch is the full set of column mutations produced by one command.
// From is the status the command was validated against and must still hold at write time.
type Patch struct {
	From Status
	To   Status
	At   time.Time
	// NoOp means the booking is already where the command wants it.
	NoOp bool

	ConfirmedAt Field[*time.Time]
	CompletedAt Field[*time.Time]
	CancelledAt Field[*time.Time]

	ProviderResponse   Field[*string]
	CancellationReason Field[*string]
	CancelledBy        Field[*Actor]
	AutoCancelled      Field[bool]

	CancellationRequestedAt   Field[*time.Time]
	CancellationRequestedBy   Field[*Actor]
	CancellationRequestReason Field[*string]
	ResolutionNotes           Field[*string]
}

// StateMachine evaluates booking commands. It is pure: no I/O, no clock.
type StateMachine struct {
	sameStatus SameStatusPolicy
}

func NewStateMachine(policy SameStatusPolicy) StateMachine {
	if policy == "" {
		policy = SameStatusReject
	}
	return StateMachine{sameStatus: policy}
}

func (m StateMachine) Transition(state State, cmd Command) (Patch, error) {
	switch c := cmd.(type) {
	case ChangeStatus:
		return m.changeStatus(state, c)
	case RequestCancellation:
		return requestCancellation(state, c)
	case ResolveCancellation:
		return resolveCancellation(state, c)
	default:
		return Patch{}, errs.Validation("unsupported booking command %T", cmd)
	}
}

func (m StateMachine) changeStatus(state State, c ChangeStatus) (Patch, error) {
	if !c.Target.IsValid() {
		return Patch{}, errs.Validation("invalid booking status %q", string(c.Target))
	}
	if c.Target == state.Status && m.sameStatus == SameStatusNoop {
		return Patch{From: state.Status, To: state.Status, At: c.At, NoOp: true}, nil
	}
	if err := checkEdge(state.Status, c.Target); err != nil {
		return Patch{}, err
	}

	p := Patch{From: state.Status, To: c.Target, At: c.At}
	applyTargetEffects(&p, targetEffects{
		providerResponse:   c.ProviderResponse,
		cancellationReason: firstNonEmpty(c.CancellationReason, state.CancellationRequestReason),
		cancelledBy:        defaultActor(c.CancelledBy, ActorProvider),
	})
	return p, nil
}

func requestCancellation(state State, c RequestCancellation) (Patch, error) {
	target, ok := c.Actor.requestStatus()
	if !ok {
		return Patch{}, errs.Validation("actor must be client or provider")
	}
	reason := strings.TrimSpace(c.Reason)
	if reason == "" {
		return Patch{}, errs.Validation("cancellation reason is required")
	}
	if state.CancellationRequestedAt != nil {
		return Patch{}, errs.Conflict("a cancellation request is already pending for this booking")
	}
	if state.Status != StatusPending && state.Status != StatusConfirmed {
		return Patch{}, errs.InvalidState("cannot request cancellation for a booking with status %s", state.Status)
	}

	at := c.At
	actor := c.Actor
	return Patch{
		From:                      state.Status,
		To:                        target,
		At:                        at,
		CancellationRequestedAt:   setTo(&at),
		CancellationRequestedBy:   setTo(&actor),
		CancellationRequestReason: setTo(&reason),
	}, nil
}

func resolveCancellation(state State, c ResolveCancellation) (Patch, error) {
	switch c.Target {
	case StatusCancelled, StatusConfirmed, StatusCompleted:
	default:
		return Patch{}, errs.Validation("resolution status must be one of cancelled, confirmed, completed")
	}
	if err := checkEdge(state.Status, c.Target); err != nil {
		return Patch{}, err
	}

	p := Patch{From: state.Status, To: c.Target, At: c.At}
	applyTargetEffects(&p, targetEffects{
		providerResponse:   c.ProviderResponse,
		cancellationReason: firstNonEmpty(state.CancellationRequestReason, c.ResolutionNotes),
		cancelledBy:        defaultActor(c.CancelledBy, ActorProvider),
	})

	notes := patch.TrimmedOrNil(c.ResolutionNotes)
	if c.Target == StatusCompleted {
		if notes != nil {
			p.ResolutionNotes = setTo(notes)
		}
	} else {
		p.ResolutionNotes = setTo(notes)
	}
	return p, nil
}

func checkEdge(from, to Status) error {
	if !from.CanTransitionTo(to) {
		return errs.InvalidTransition("cannot transition booking from %s to %s", from, to)
	}
	return nil
}

type targetEffects struct {
	providerResponse   *string
	cancellationReason *string
	cancelledBy        Actor
}

// applyTargetEffects stamps the timestamp owned by the target status and, for
// confirmed/cancelled, clears any pending cancellation request.
func applyTargetEffects(p *Patch, eff targetEffects) {
	at := p.At
	if pr := patch.TrimmedOrNil(eff.providerResponse); pr != nil {
		p.ProviderResponse = setTo(pr)
	}

	switch p.To {
	case StatusConfirmed:
		p.ConfirmedAt = setTo(&at)
		clearRequest(p)
	case StatusCompleted:
		p.CompletedAt = setTo(&at)
	case StatusCancelled:
		by := eff.cancelledBy
		p.CancelledAt = setTo(&at)
		p.CancelledBy = setTo(&by)
		p.AutoCancelled = setTo(by == ActorSystem)
		p.CancellationReason = setTo(eff.cancellationReason)
		clearRequest(p)
	}
}

func clearRequest(p *Patch) {
	p.CancellationRequestedAt = setTo[*time.Time](nil)
	p.CancellationRequestedBy = setTo[*Actor](nil)
	p.CancellationRequestReason = setTo[*string](nil)
}

func defaultActor(a, fallback Actor) Actor {
	if a == "" {
		return fallback
	}
	return a
}

func firstNonEmpty(candidates ...*string) *string {
	for _, c := range candidates {
		if v := patch.TrimmedOrNil(c); v != nil {
			return v
		}
	}
	return nil
}
