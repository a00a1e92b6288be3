//go:build unit

package response

import (
	"testing"
	"time"

	"marketplace-orders/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPurchaseView(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	buyerID := uuid.New()
	address := "1 Main St"
	view := &queries.PurchaseView{
		ID:              uuid.New(),
		TrackingID:      "BMC-ABC123",
		ListingID:       uuid.New(),
		SellerID:        uuid.New(),
		BuyerID:         &buyerID,
		BuyerName:       "Bo Buyer",
		BuyerEmail:      "bo@example.com",
		ShippingAddress: &address,
		Quantity:        3,
		UnitPrice:       decimal.RequireFromString("19.99"),
		TotalAmount:     decimal.RequireFromString("59.97"),
		Currency:        "USD",
		Status:          "PENDING",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	got, err := FromPurchaseView(view)
	require.NoError(t, err)

	want := &PurchaseResponse{
		ID:              view.ID,
		TrackingID:      "BMC-ABC123",
		ListingID:       view.ListingID,
		SellerID:        view.SellerID,
		BuyerID:         &buyerID,
		BuyerName:       "Bo Buyer",
		BuyerEmail:      "bo@example.com",
		ShippingAddress: &address,
		Quantity:        3,
		UnitPrice:       "19.99",
		TotalAmount:     "59.97",
		Currency:        "USD",
		Status:          "PENDING",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromPurchaseView() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromBookingView_MoneyIsFixedPoint(t *testing.T) {
	view := &queries.BookingView{
		Reference: "BMC-BOOK-ABC123",
		Amount:    decimal.RequireFromString("150"),
		Status:    "pending",
	}

	got, err := FromBookingView(view)
	require.NoError(t, err)
	assert.Equal(t, "150.00", got.Amount)
	assert.Equal(t, "BMC-BOOK-ABC123", got.Reference)
}

func TestFromListingView_CopiesFeatures(t *testing.T) {
	view := &queries.ListingView{
		Features: []string{"a", "b", "c"},
		Price:    decimal.RequireFromString("9.5"),
	}

	got, err := FromListingView(view)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got.Features)
	assert.Equal(t, "9.50", got.Price)
}
