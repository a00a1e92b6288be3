//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-orders/internal/domain/purchase"
	reqdto "marketplace-orders/internal/handler/dto/request"
	"marketplace-orders/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseBuilder struct {
	TrackingID      string
	ListingID       uuid.UUID
	SellerID        uuid.UUID
	BuyerID         *uuid.UUID
	BuyerName       string
	BuyerEmail      string
	ShippingAddress *string
	Quantity        int32
	UnitPrice       decimal.Decimal
	Currency        string
	Status          purchase.Status
	Now             time.Time
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		TrackingID: "BMC-TEST01",
		ListingID:  uuid.New(),
		SellerID:   uuid.New(),
		BuyerName:  "Bo Buyer",
		BuyerEmail: "bo@example.com",
		Quantity:   3,
		UnitPrice:  decimal.RequireFromString("19.99"),
		Currency:   "USD",
		Status:     purchase.StatusPending,
		Now:        time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

func (b *PurchaseBuilder) WithStatus(s purchase.Status) *PurchaseBuilder {
	b.Status = s
	return b
}

func (b *PurchaseBuilder) WithBuyerID(id uuid.UUID) *PurchaseBuilder {
	b.BuyerID = &id
	return b
}

func (b *PurchaseBuilder) NewParams() purchase.NewParams {
	return purchase.NewParams{
		TrackingID:      b.TrackingID,
		ListingID:       b.ListingID,
		SellerID:        b.SellerID,
		BuyerID:         b.BuyerID,
		BuyerName:       b.BuyerName,
		BuyerEmail:      b.BuyerEmail,
		ShippingAddress: b.ShippingAddress,
		Quantity:        b.Quantity,
		UnitPrice:       b.UnitPrice,
		Currency:        b.Currency,
	}
}

func (b *PurchaseBuilder) BuildDomain() (*purchase.Purchase, error) {
	return purchase.NewPurchase(b.NewParams(), b.Now)
}

func (b *PurchaseBuilder) BuildSnapshot() purchase.Snapshot {
	return purchase.Snapshot{
		ID:              uuid.New(),
		TrackingID:      b.TrackingID,
		ListingID:       b.ListingID,
		SellerID:        b.SellerID,
		BuyerID:         b.BuyerID,
		BuyerName:       b.BuyerName,
		BuyerEmail:      b.BuyerEmail,
		ShippingAddress: b.ShippingAddress,
		Quantity:        b.Quantity,
		UnitPrice:       b.UnitPrice,
		TotalAmount:     b.UnitPrice.Mul(decimal.NewFromInt32(b.Quantity)),
		Currency:        b.Currency,
		Status:          b.Status,
		CreatedAt:       b.Now.Add(-24 * time.Hour),
		UpdatedAt:       b.Now.Add(-time.Hour),
	}
}

func (b *PurchaseBuilder) BuildReconstructed() *purchase.Purchase {
	return purchase.Reconstruct(b.BuildSnapshot())
}

func (b *PurchaseBuilder) BuildView() *queries.PurchaseView {
	return queries.PurchaseViewFromSnapshot(b.BuildSnapshot())
}

func (b *PurchaseBuilder) BuildCreateRequestDTO() reqdto.CreatePurchaseRequest {
	return reqdto.CreatePurchaseRequest{
		ListingID:       b.ListingID,
		Quantity:        b.Quantity,
		BuyerName:       b.BuyerName,
		BuyerEmail:      b.BuyerEmail,
		ShippingAddress: b.ShippingAddress,
	}
}
