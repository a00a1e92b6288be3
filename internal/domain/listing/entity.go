package listing

import (
	"slices"
	"strings"
	"time"

	"marketplace-orders/internal/domain/auth"
	"marketplace-orders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Type string

const (
	TypeProduct Type = "product"
	TypeService Type = "service"
)

const MinFeatures = 3

func AllStatuses() []Status {
	return []Status{StatusDraft, StatusActive, StatusInactive}
}

func (s Status) IsValid() bool {
	return slices.Contains(AllStatuses(), s)
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", errs.Validation("invalid listing status: %s", raw)
	}
	return s, nil
}

type Snapshot struct {
	ID               uuid.UUID
	ProviderID       uuid.UUID
	Type             Type
	Status           Status
	Title            string
	ShortDescription string
	LongDescription  string
	Location         string
	ImageURL         *string
	Features         []string
	Price            decimal.Decimal
	Currency         string
	StockQuantity    *int32
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Listing struct {
	s Snapshot
}

func Reconstruct(s Snapshot) *Listing {
	return &Listing{s: s}
}

func (l *Listing) Snapshot() Snapshot { return l.s }
func (l *Listing) ID() uuid.UUID { return l.s.ID }
func (l *Listing) ProviderID() uuid.UUID { return l.s.ProviderID }
func (l *Listing) Status() Status { return l.s.Status }
func (l *Listing) Type() Type { return l.s.Type }
func (l *Listing) Price() decimal.Decimal { return l.s.Price }
func (l *Listing) Currency() string { return l.s.Currency }
func (l *Listing) StockQuantity() *int32 { return l.s.StockQuantity }
func (l *Listing) Title() string { return l.s.Title }

// TracksStock reports whether stock_quantity is enforced for this listing.
func (l *Listing) TracksStock() bool { return l.s.StockQuantity != nil }

// ActivationViolations returns every completeness rule the listing breaks.
func (l *Listing) ActivationViolations() []string {
	var v []string
	if l.s.ImageURL == nil || strings.TrimSpace(*l.s.ImageURL) == "" {
		v = append(v, "image is required")
	}
	features := 0
	for _, f := range l.s.Features {
		if strings.TrimSpace(f) != "" {
			features++
		}
	}
	if features < MinFeatures {
		v = append(v, "at least 3 features are required")
	}
	if strings.TrimSpace(l.s.Title) == "" {
		v = append(v, "title is required")
	}
	if strings.TrimSpace(l.s.ShortDescription) == "" {
		v = append(v, "short description is required")
	}
	if strings.TrimSpace(l.s.LongDescription) == "" {
		v = append(v, "long description is required")
	}
	if strings.TrimSpace(l.s.Location) == "" {
		v = append(v, "location is required")
	}
	if !l.s.Price.IsPositive() {
		v = append(v, "price must be greater than zero")
	}
	return v
}

// ChangeStatus returns the listing moved to target. unchanged is true when the
// listing already has that status.
func (l *Listing) ChangeStatus(target Status, at time.Time) (next *Listing, unchanged bool, err error) {
	if !target.IsValid() {
		return nil, false, errs.Validation("invalid listing status: %s", target)
	}
	if target == l.s.Status {
		return l, true, nil
	}
	if target == StatusActive {
		if v := l.ActivationViolations(); len(v) > 0 {
			return nil, false, errs.WithDetails(errs.Validation("listing is incomplete and cannot be activated"), v)
		}
	}
	cp := l.s
	cp.Status = target
	cp.UpdatedAt = at
	return &Listing{s: cp}, false, nil
}

// CheckPurchasable verifies the listing can be ordered in the given quantity.
func (l *Listing) CheckPurchasable(quantity int32) error {
	if l.s.Status != StatusActive {
		return errs.Validation("listing is not active")
	}
	if l.s.Type != TypeProduct {
		return errs.Validation("listing is not a product")
	}
	if l.s.StockQuantity != nil && *l.s.StockQuantity < quantity {
		return errs.Validation("insufficient stock: %d available", *l.s.StockQuantity)
	}
	return nil
}

// CheckBookable verifies a booking can be made against the listing.
func (l *Listing) CheckBookable() error {
	if l.s.Status != StatusActive {
		return errs.Validation("listing is not active")
	}
	if l.s.Type != TypeService {
		return errs.Validation("listing is not a service")
	}
	return nil
}

func (l *Listing) AuthorizeProvider(c auth.Caller) error {
	if !c.IsAuthenticated() {
		return errs.Unauthorized("authentication required")
	}
	if !c.Is(l.s.ProviderID) {
		return errs.Forbidden("only the provider of this listing can change its status")
	}
	return nil
}
