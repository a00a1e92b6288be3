package response

import (
	"time"

	"marketplace-orders/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseResponse struct {
	ID              uuid.UUID  `json:"id"`
	TrackingID      string     `json:"tracking_id"`
	ListingID       uuid.UUID  `json:"listing_id"`
	SellerID        uuid.UUID  `json:"seller_id"`
	BuyerID         *uuid.UUID `json:"buyer_id,omitempty"`
	BuyerName       string     `json:"buyer_name"`
	BuyerEmail      string     `json:"buyer_email"`
	BuyerPhone      *string    `json:"buyer_phone,omitempty"`
	ShippingAddress *string    `json:"shipping_address,omitempty"`
	Quantity        int32      `json:"quantity"`
	UnitPrice       string     `json:"unit_price"`
	TotalAmount     string     `json:"total_amount"`
	Currency        string     `json:"currency"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	ShippedAt       *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type PurchaseEnvelope struct {
	Success    bool              `json:"success"`
	TrackingID string            `json:"tracking_id,omitempty"`
	Purchase   *PurchaseResponse `json:"purchase"`
}

func FromPurchaseView(v *queries.PurchaseView) (*PurchaseResponse, error) {
	return copyView[PurchaseResponse](v)
}
