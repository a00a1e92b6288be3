package booking

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace-orders/internal/domain/auth"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxProjectTitleLength = 200
	MaxReasonLength       = 2000
)

// Snapshot is the flat persisted form of a booking.
type Snapshot struct {
	ID                 uuid.UUID
	Reference          string
	ListingID          uuid.UUID
	ProviderID         uuid.UUID
	ClientID           *uuid.UUID
	ClientName         string
	ClientEmail        string
	ClientPhone        *string
	ProjectTitle       string
	ProjectDescription *string
	PreferredDate      *time.Time
	Amount             decimal.Decimal
	Currency           string
	Status             Status

	ProviderResponse   *string
	CancellationReason *string
	CancelledBy        *Actor
	AutoCancelled      bool

	CancellationRequestedAt   *time.Time
	CancellationRequestedBy   *Actor
	CancellationRequestReason *string
	ResolutionNotes           *string

	CreatedAt   time.Time
	ConfirmedAt *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
	UpdatedAt   time.Time
}

type Booking struct {
	s Snapshot
}

type NewParams struct {
	Reference          string
	ListingID          uuid.UUID
	ProviderID         uuid.UUID
	ClientID           *uuid.UUID
	ClientName         string
	ClientEmail        string
	ClientPhone        *string
	ProjectTitle       string
	ProjectDescription *string
	PreferredDate      *time.Time
	Amount             decimal.Decimal
	Currency           string
}

func NewBooking(p NewParams, now time.Time) (*Booking, error) {
	if err := ValidateReference(p.Reference); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(p.ProjectTitle)
	if title == "" {
		return nil, errs.Validation("project_title is required")
	}
	if utf8.RuneCountInString(title) > MaxProjectTitleLength {
		return nil, errs.Validation("project_title must be at most %d characters", MaxProjectTitleLength)
	}
	name := strings.TrimSpace(p.ClientName)
	if name == "" {
		return nil, errs.Validation("client_name is required")
	}
	email := auth.NormalizeEmail(p.ClientEmail)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, errs.Validation("client_email must be a valid email address")
	}
	if p.ProviderID == uuid.Nil || p.ListingID == uuid.Nil {
		return nil, errs.Validation("listing and provider are required")
	}
	if p.Amount.IsNegative() {
		return nil, errs.Validation("amount cannot be negative")
	}
	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if len(currency) != 3 {
		return nil, errs.Validation("currency must be a 3-letter ISO code")
	}

	return &Booking{s: Snapshot{
		ID:                 uuid.New(),
		Reference:          p.Reference,
		ListingID:          p.ListingID,
		ProviderID:         p.ProviderID,
		ClientID:           p.ClientID,
		ClientName:         name,
		ClientEmail:        email,
		ClientPhone:        patch.TrimmedOrNil(p.ClientPhone),
		ProjectTitle:       title,
		ProjectDescription: patch.TrimmedOrNil(p.ProjectDescription),
		PreferredDate:      p.PreferredDate,
		Amount:             p.Amount,
		Currency:           currency,
		Status:             StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}}, nil
}

// Reconstruct rebuilds an aggregate from storage without re-validating it.
func Reconstruct(s Snapshot) *Booking {
	return &Booking{s: s}
}

// WithReference returns a copy carrying a different reference; used on reference collisions.
func (b *Booking) WithReference(ref string) (*Booking, error) {
	if err := ValidateReference(ref); err != nil {
		return nil, err
	}
	cp := b.s
	cp.Reference = ref
	return &Booking{s: cp}, nil
}

func (b *Booking) Snapshot() Snapshot { return b.s }
func (b *Booking) ID() uuid.UUID { return b.s.ID }
func (b *Booking) Reference() string { return b.s.Reference }
func (b *Booking) Status() Status { return b.s.Status }
func (b *Booking) ProviderID() uuid.UUID { return b.s.ProviderID }
func (b *Booking) ClientID() *uuid.UUID { return b.s.ClientID }
func (b *Booking) ClientEmail() string { return b.s.ClientEmail }
func (b *Booking) CreatedAt() time.Time { return b.s.CreatedAt }
func (b *Booking) ListingID() uuid.UUID { return b.s.ListingID }
func (b *Booking) ProjectTitle() string { return b.s.ProjectTitle }
func (b *Booking) Amount() decimal.Decimal { return b.s.Amount }

func (b *Booking) State() State {
	return State{
		Status:                    b.s.Status,
		CancellationRequestedAt:   b.s.CancellationRequestedAt,
		CancellationRequestReason: b.s.CancellationRequestReason,
	}
}

// Apply returns a new aggregate with p applied. A NoOp patch returns b unchanged.
func (b *Booking) Apply(p Patch) *Booking {
	if p.NoOp {
		return b
	}
	next := b.s
	next.Status = p.To
	next.UpdatedAt = p.At

	p.ConfirmedAt.applyTo(&next.ConfirmedAt)
	p.CompletedAt.applyTo(&next.CompletedAt)
	p.CancelledAt.applyTo(&next.CancelledAt)
	p.ProviderResponse.applyTo(&next.ProviderResponse)
	p.CancellationReason.applyTo(&next.CancellationReason)
	p.CancelledBy.applyTo(&next.CancelledBy)
	p.AutoCancelled.applyTo(&next.AutoCancelled)
	p.CancellationRequestedAt.applyTo(&next.CancellationRequestedAt)
	p.CancellationRequestedBy.applyTo(&next.CancellationRequestedBy)
	p.CancellationRequestReason.applyTo(&next.CancellationRequestReason)
	p.ResolutionNotes.applyTo(&next.ResolutionNotes)

	return &Booking{s: next}
}
