package response

import (
	"time"

	"marketplace-orders/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingResponse struct {
	ID               uuid.UUID `json:"id"`
	ProviderID       uuid.UUID `json:"provider_id"`
	ListingType      string    `json:"listing_type"`
	Status           string    `json:"status"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	Location         string    `json:"location"`
	ImageURL         *string   `json:"image_url,omitempty"`
	Features         []string  `json:"features"`
	Price            string    `json:"price"`
	Currency         string    `json:"currency"`
	StockQuantity    *int32    `json:"stock_quantity,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ListingEnvelope struct {
	Success bool             `json:"success"`
	Listing *ListingResponse `json:"listing"`
}

func FromListingView(v *queries.ListingView) (*ListingResponse, error) {
	return copyView[ListingResponse](v)
}
