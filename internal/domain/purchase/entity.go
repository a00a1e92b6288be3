package purchase

import (
	"net/mail"
	"strings"
	"time"

	"marketplace-orders/internal/domain/auth"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxQuantity = 1000

type Snapshot struct {
	ID              uuid.UUID
	TrackingID      string
	ListingID       uuid.UUID
	SellerID        uuid.UUID
	BuyerID         *uuid.UUID
	BuyerName       string
	BuyerEmail      string
	BuyerPhone      *string
	ShippingAddress *string
	Quantity        int32
	UnitPrice       decimal.Decimal
	TotalAmount     decimal.Decimal
	Currency        string
	Status          Status

	CreatedAt   time.Time
	PaidAt      *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	UpdatedAt   time.Time
}

type Purchase struct {
	s Snapshot
}

type NewParams struct {
	TrackingID      string
	ListingID       uuid.UUID
	SellerID        uuid.UUID
	BuyerID         *uuid.UUID
	BuyerName       string
	BuyerEmail      string
	BuyerPhone      *string
	ShippingAddress *string
	Quantity        int32
	UnitPrice       decimal.Decimal
	Currency        string
}

// NewPurchase validates the order and computes total = unit_price * quantity.
func NewPurchase(p NewParams, now time.Time) (*Purchase, error) {
	if err := ValidateTrackingID(p.TrackingID); err != nil {
		return nil, err
	}
	if p.Quantity <= 0 {
		return nil, errs.Validation("quantity must be greater than zero")
	}
	if p.Quantity > MaxQuantity {
		return nil, errs.Validation("quantity must be at most %d", MaxQuantity)
	}
	name := strings.TrimSpace(p.BuyerName)
	if name == "" {
		return nil, errs.Validation("buyer_name is required")
	}
	email := auth.NormalizeEmail(p.BuyerEmail)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, errs.Validation("buyer_email must be a valid email address")
	}
	if p.ListingID == uuid.Nil || p.SellerID == uuid.Nil {
		return nil, errs.Validation("listing and seller are required")
	}
	if !p.UnitPrice.IsPositive() {
		return nil, errs.Validation("unit price must be greater than zero")
	}
	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if len(currency) != 3 {
		return nil, errs.Validation("currency must be a 3-letter ISO code")
	}

	return &Purchase{s: Snapshot{
		ID:              uuid.New(),
		TrackingID:      p.TrackingID,
		ListingID:       p.ListingID,
		SellerID:        p.SellerID,
		BuyerID:         p.BuyerID,
		BuyerName:       name,
		BuyerEmail:      email,
		BuyerPhone:      patch.TrimmedOrNil(p.BuyerPhone),
		ShippingAddress: patch.TrimmedOrNil(p.ShippingAddress),
		Quantity:        p.Quantity,
		UnitPrice:       p.UnitPrice,
		TotalAmount:     p.UnitPrice.Mul(decimal.NewFromInt32(p.Quantity)),
		Currency:        currency,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}}, nil
}

func Reconstruct(s Snapshot) *Purchase {
	return &Purchase{s: s}
}

func (p *Purchase) WithTrackingID(id string) (*Purchase, error) {
	if err := ValidateTrackingID(id); err != nil {
		return nil, err
	}
	cp := p.s
	cp.TrackingID = id
	return &Purchase{s: cp}, nil
}

func (p *Purchase) Snapshot() Snapshot { return p.s }
func (p *Purchase) ID() uuid.UUID { return p.s.ID }
func (p *Purchase) TrackingID() string { return p.s.TrackingID }
func (p *Purchase) Status() Status { return p.s.Status }
func (p *Purchase) ListingID() uuid.UUID { return p.s.ListingID }
func (p *Purchase) SellerID() uuid.UUID { return p.s.SellerID }
func (p *Purchase) Quantity() int32 { return p.s.Quantity }
func (p *Purchase) BuyerEmail() string { return p.s.BuyerEmail }
func (p *Purchase) TotalAmount() decimal.Decimal { return p.s.TotalAmount }

// Change is the result of a purchase transition: the status the update must
// still observe and the aggregate after the change.
type Change struct {
	From Status
	Next *Purchase
}

// Cancel moves the purchase to CANCELLED. Only PENDING and PAID purchases can be cancelled.
func (p *Purchase) Cancel(at time.Time) (Change, error) {
	if !p.s.Status.IsCancellable() {
		return Change{}, errs.InvalidState("cannot cancel purchase with status %s", p.s.Status)
	}
	next := p.s
	next.Status = StatusCancelled
	next.CancelledAt = &at
	next.UpdatedAt = at
	return Change{From: p.s.Status, Next: &Purchase{s: next}}, nil
}

// Advance moves the purchase one step along the fulfilment table.
func (p *Purchase) Advance(target Status, at time.Time) (Change, error) {
	if !target.IsValid() {
		return Change{}, errs.Validation("invalid purchase status: %s", target)
	}
	if target == StatusCancelled {
		return Change{}, errs.Validation("use the cancel endpoint to cancel a purchase")
	}
	if !p.s.Status.CanAdvanceTo(target) {
		return Change{}, errs.InvalidTransition("cannot transition purchase from %s to %s", p.s.Status, target)
	}
	next := p.s
	next.Status = target
	next.UpdatedAt = at
	switch target {
	case StatusPaid:
		next.PaidAt = &at
	case StatusShipped:
		next.ShippedAt = &at
	case StatusDelivered:
		next.DeliveredAt = &at
	}
	return Change{From: p.s.Status, Next: &Purchase{s: next}}, nil
}

// AuthorizeBuyer accepts the owning user when buyer_id is set, otherwise a
// case-insensitive match on the buyer email.
func (p *Purchase) AuthorizeBuyer(c auth.Caller) error {
	if p.s.BuyerID != nil {
		if !c.IsAuthenticated() {
			return errs.Unauthorized("authentication required")
		}
		if !c.Is(*p.s.BuyerID) {
			return errs.Forbidden("only the buyer of this purchase can perform this action")
		}
		return nil
	}
	if !c.EmailMatches(p.s.BuyerEmail) {
		if !c.IsAuthenticated() && strings.TrimSpace(c.ClaimedEmail) == "" {
			return errs.Unauthorized("buyer_email or authentication required")
		}
		return errs.Forbidden("buyer email does not match this purchase")
	}
	return nil
}

func (p *Purchase) AuthorizeSeller(c auth.Caller) error {
	if !c.IsAuthenticated() {
		return errs.Unauthorized("authentication required")
	}
	if !c.Is(p.s.SellerID) {
		return errs.Forbidden("only the seller of this purchase can perform this action")
	}
	return nil
}
