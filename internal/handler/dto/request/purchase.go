package request

import (
	"marketplace-orders/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePurchaseRequest struct {
	ListingID       uuid.UUID `json:"listing_id" binding:"required"`
	Quantity        int32     `json:"quantity" binding:"required,min=1,max=1000"`
	BuyerName       string    `json:"buyer_name" binding:"required,max=200"`
	BuyerEmail      string    `json:"buyer_email" binding:"required,email"`
	BuyerPhone      *string   `json:"buyer_phone" binding:"omitempty,max=50"`
	ShippingAddress *string   `json:"shipping_address" binding:"omitempty,max=1000"`
}

func (r *CreatePurchaseRequest) ToCommand() commands.CreatePurchaseRequest {
	return commands.CreatePurchaseRequest{
		ListingID:       r.ListingID,
		Quantity:        r.Quantity,
		BuyerName:       r.BuyerName,
		BuyerEmail:      r.BuyerEmail,
		BuyerPhone:      r.BuyerPhone,
		ShippingAddress: r.ShippingAddress,
	}
}

type CancelPurchaseRequest struct {
	BuyerEmail string `json:"buyer_email" binding:"omitempty,email"`
}

type UpdatePurchaseStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
