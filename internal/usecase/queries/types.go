package queries

import (
	"time"

	"marketplace-orders/internal/domain/booking"
	"marketplace-orders/internal/domain/listing"
	"marketplace-orders/internal/domain/purchase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                        uuid.UUID       `json:"id"`
	Reference                 string          `json:"reference"`
	ListingID                 uuid.UUID       `json:"listing_id"`
	ProviderID                uuid.UUID       `json:"provider_id"`
	ClientID                  *uuid.UUID      `json:"client_id,omitempty"`
	ClientName                string          `json:"client_name"`
	ClientEmail               string          `json:"client_email"`
	ClientPhone               *string         `json:"client_phone,omitempty"`
	ProjectTitle              string          `json:"project_title"`
	ProjectDescription        *string         `json:"project_description,omitempty"`
	PreferredDate             *time.Time      `json:"preferred_date,omitempty"`
	Amount                    decimal.Decimal `json:"amount"`
	Currency                  string          `json:"currency"`
	Status                    string          `json:"status"`
	ProviderResponse          *string         `json:"provider_response,omitempty"`
	CancellationReason        *string         `json:"cancellation_reason,omitempty"`
	CancelledBy               *string         `json:"cancelled_by,omitempty"`
	AutoCancelled             bool            `json:"auto_cancelled"`
	CancellationRequestedAt   *time.Time      `json:"cancellation_requested_at,omitempty"`
	CancellationRequestedBy   *string         `json:"cancellation_requested_by,omitempty"`
	CancellationRequestReason *string         `json:"cancellation_request_reason,omitempty"`
	ResolutionNotes           *string         `json:"resolution_notes,omitempty"`
	CreatedAt                 time.Time       `json:"created_at"`
	ConfirmedAt               *time.Time      `json:"confirmed_at,omitempty"`
	CompletedAt               *time.Time      `json:"completed_at,omitempty"`
	CancelledAt               *time.Time      `json:"cancelled_at,omitempty"`
	UpdatedAt                 time.Time       `json:"updated_at"`
}

type PurchaseView struct {
	ID              uuid.UUID       `json:"id"`
	TrackingID      string          `json:"tracking_id"`
	ListingID       uuid.UUID       `json:"listing_id"`
	SellerID        uuid.UUID       `json:"seller_id"`
	BuyerID         *uuid.UUID      `json:"buyer_id,omitempty"`
	BuyerName       string          `json:"buyer_name"`
	BuyerEmail      string          `json:"buyer_email"`
	BuyerPhone      *string         `json:"buyer_phone,omitempty"`
	ShippingAddress *string         `json:"shipping_address,omitempty"`
	Quantity        int32           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	ShippedAt       *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ListingView struct {
	ID               uuid.UUID       `json:"id"`
	ProviderID       uuid.UUID       `json:"provider_id"`
	ListingType      string          `json:"listing_type"`
	Status           string          `json:"status"`
	Title            string          `json:"title"`
	ShortDescription string          `json:"short_description"`
	LongDescription  string          `json:"long_description"`
	Location         string          `json:"location"`
	ImageURL         *string         `json:"image_url,omitempty"`
	Features         []string        `json:"features"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency"`
	StockQuantity    *int32          `json:"stock_quantity,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func BookingViewFromSnapshot(s booking.Snapshot) *BookingView {
	return &BookingView{
		ID:                        s.ID,
		Reference:                 s.Reference,
		ListingID:                 s.ListingID,
		ProviderID:                s.ProviderID,
		ClientID:                  s.ClientID,
		ClientName:                s.ClientName,
		ClientEmail:               s.ClientEmail,
		ClientPhone:               s.ClientPhone,
		ProjectTitle:              s.ProjectTitle,
		ProjectDescription:        s.ProjectDescription,
		PreferredDate:             s.PreferredDate,
		Amount:                    s.Amount,
		Currency:                  s.Currency,
		Status:                    string(s.Status),
		ProviderResponse:          s.ProviderResponse,
		CancellationReason:        s.CancellationReason,
		CancelledBy:               actorString(s.CancelledBy),
		AutoCancelled:             s.AutoCancelled,
		CancellationRequestedAt:   s.CancellationRequestedAt,
		CancellationRequestedBy:   actorString(s.CancellationRequestedBy),
		CancellationRequestReason: s.CancellationRequestReason,
		ResolutionNotes:           s.ResolutionNotes,
		CreatedAt:                 s.CreatedAt,
		ConfirmedAt:               s.ConfirmedAt,
		CompletedAt:               s.CompletedAt,
		CancelledAt:               s.CancelledAt,
		UpdatedAt:                 s.UpdatedAt,
	}
}

func PurchaseViewFromSnapshot(s purchase.Snapshot) *PurchaseView {
	return &PurchaseView{
		ID:              s.ID,
		TrackingID:      s.TrackingID,
		ListingID:       s.ListingID,
		SellerID:        s.SellerID,
		BuyerID:         s.BuyerID,
		BuyerName:       s.BuyerName,
		BuyerEmail:      s.BuyerEmail,
		BuyerPhone:      s.BuyerPhone,
		ShippingAddress: s.ShippingAddress,
		Quantity:        s.Quantity,
		UnitPrice:       s.UnitPrice,
		TotalAmount:     s.TotalAmount,
		Currency:        s.Currency,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		PaidAt:          s.PaidAt,
		ShippedAt:       s.ShippedAt,
		DeliveredAt:     s.DeliveredAt,
		CancelledAt:     s.CancelledAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func ListingViewFromSnapshot(s listing.Snapshot) *ListingView {
	return &ListingView{
		ID:               s.ID,
		ProviderID:       s.ProviderID,
		ListingType:      string(s.Type),
		Status:           string(s.Status),
		Title:            s.Title,
		ShortDescription: s.ShortDescription,
		LongDescription:  s.LongDescription,
		Location:         s.Location,
		ImageURL:         s.ImageURL,
		Features:         s.Features,
		Price:            s.Price,
		Currency:         s.Currency,
		StockQuantity:    s.StockQuantity,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func actorString(a *booking.Actor) *string {
	if a == nil {
		return nil
	}
	s := string(*a)
	return &s
}
