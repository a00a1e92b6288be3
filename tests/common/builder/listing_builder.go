//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-orders/internal/domain/listing"
	"marketplace-orders/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ListingBuilder struct {
	ID               uuid.UUID
	ProviderID       uuid.UUID
	Type             listing.Type
	Status           listing.Status
	Title            string
	ShortDescription string
	LongDescription  string
	Location         string
	ImageURL         *string
	Features         []string
	Price            decimal.Decimal
	Currency         string
	StockQuantity    *int32
	Now              time.Time
}

// NewListingBuilder returns a draft product listing that passes the activation gate.
func NewListingBuilder() *ListingBuilder {
	image := "https://cdn.example.com/listing.jpg"
	stock := int32(10)
	return &ListingBuilder{
		ID:               uuid.New(),
		ProviderID:       uuid.New(),
		Type:             listing.TypeProduct,
		Status:           listing.StatusDraft,
		Title:            "Handmade oak table",
		ShortDescription: "Solid oak dining table",
		LongDescription:  "A solid oak dining table for six, finished with natural oil.",
		Location:         "Lisbon",
		ImageURL:         &image,
		Features:         []string{"solid oak", "seats six", "oil finish"},
		Price:            decimal.RequireFromString("499.00"),
		Currency:         "EUR",
		StockQuantity:    &stock,
		Now:              time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) WithStatus(s listing.Status) *ListingBuilder {
	b.Status = s
	return b
}

func (b *ListingBuilder) WithStock(n *int32) *ListingBuilder {
	b.StockQuantity = n
	return b
}

func (b *ListingBuilder) AsService() *ListingBuilder {
	b.Type = listing.TypeService
	b.StockQuantity = nil
	return b
}

func (b *ListingBuilder) BuildSnapshot() listing.Snapshot {
	return listing.Snapshot{
		ID:               b.ID,
		ProviderID:       b.ProviderID,
		Type:             b.Type,
		Status:           b.Status,
		Title:            b.Title,
		ShortDescription: b.ShortDescription,
		LongDescription:  b.LongDescription,
		Location:         b.Location,
		ImageURL:         b.ImageURL,
		Features:         b.Features,
		Price:            b.Price,
		Currency:         b.Currency,
		StockQuantity:    b.StockQuantity,
		CreatedAt:        b.Now.Add(-24 * time.Hour),
		UpdatedAt:        b.Now.Add(-24 * time.Hour),
	}
}

func (b *ListingBuilder) BuildDomain() *listing.Listing {
	return listing.Reconstruct(b.BuildSnapshot())
}

func (b *ListingBuilder) BuildView() *queries.ListingView {
	return queries.ListingViewFromSnapshot(b.BuildSnapshot())
}
