//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-orders/internal/domain/booking"
	reqdto "marketplace-orders/internal/handler/dto/request"
	"marketplace-orders/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	Reference          string
	ListingID          uuid.UUID
	ProviderID         uuid.UUID
	ClientID           *uuid.UUID
	ClientName         string
	ClientEmail        string
	ClientPhone        *string
	ProjectTitle       string
	ProjectDescription *string
	Amount             decimal.Decimal
	Currency           string
	Status             booking.Status
	RequestedAt        *time.Time
	RequestedBy        *booking.Actor
	RequestReason      *string
	Now                time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Reference:    "BMC-BOOK-TEST01",
		ListingID:    uuid.New(),
		ProviderID:   uuid.New(),
		ClientName:   "Ada Client",
		ClientEmail:  "ada@example.com",
		ProjectTitle: "Kitchen renovation",
		Amount:       decimal.RequireFromString("150.00"),
		Currency:     "USD",
		Status:       booking.StatusPending,
		Now:          time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithClientID(id uuid.UUID) *BookingBuilder {
	b.ClientID = &id
	return b
}

func (b *BookingBuilder) WithPendingRequest(actor booking.Actor, reason string) *BookingBuilder {
	at := b.Now.Add(-time.Hour)
	b.RequestedAt = &at
	b.RequestedBy = &actor
	b.RequestReason = &reason
	if actor == booking.ActorClient {
		b.Status = booking.StatusClientCancellationRequested
	} else {
		b.Status = booking.StatusProviderCancellationRequested
	}
	return b
}

func (b *BookingBuilder) NewParams() booking.NewParams {
	return booking.NewParams{
		Reference:          b.Reference,
		ListingID:          b.ListingID,
		ProviderID:         b.ProviderID,
		ClientID:           b.ClientID,
		ClientName:         b.ClientName,
		ClientEmail:        b.ClientEmail,
		ClientPhone:        b.ClientPhone,
		ProjectTitle:       b.ProjectTitle,
		ProjectDescription: b.ProjectDescription,
		Amount:             b.Amount,
		Currency:           b.Currency,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.NewParams(), b.Now)
}

// BuildReconstructed returns an aggregate in the builder's status without validation.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	return booking.Reconstruct(b.BuildSnapshot())
}

func (b *BookingBuilder) BuildSnapshot() booking.Snapshot {
	return booking.Snapshot{
		ID:                        uuid.New(),
		Reference:                 b.Reference,
		ListingID:                 b.ListingID,
		ProviderID:                b.ProviderID,
		ClientID:                  b.ClientID,
		ClientName:                b.ClientName,
		ClientEmail:               b.ClientEmail,
		ClientPhone:               b.ClientPhone,
		ProjectTitle:              b.ProjectTitle,
		ProjectDescription:        b.ProjectDescription,
		Amount:                    b.Amount,
		Currency:                  b.Currency,
		Status:                    b.Status,
		CancellationRequestedAt:   b.RequestedAt,
		CancellationRequestedBy:   b.RequestedBy,
		CancellationRequestReason: b.RequestReason,
		CreatedAt:                 b.Now.Add(-24 * time.Hour),
		UpdatedAt:                 b.Now.Add(-time.Hour),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	s := b.BuildSnapshot()
	return queries.BookingViewFromSnapshot(s)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ListingID:    b.ListingID,
		ProjectTitle: b.ProjectTitle,
		ClientName:   b.ClientName,
		ClientEmail:  b.ClientEmail,
		ClientPhone:  b.ClientPhone,
	}
}
