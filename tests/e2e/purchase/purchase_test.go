//go:build e2e

package purchase_test

import (
	"net/http"
	"regexp"
	"testing"

	"marketplace-orders/internal/domain/listing"
	resdto "marketplace-orders/internal/handler/dto/response"
	"marketplace-orders/internal/pkg/ptr"
	"marketplace-orders/tests/common/builder"
	"marketplace-orders/tests/common/dbtest"
	"marketplace-orders/tests/common/httptest"
	"marketplace-orders/tests/common/testutil"
	"marketplace-orders/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var trackingPattern = regexp.MustCompile(`^BMC-[A-Z0-9]{6}$`)

type PurchaseE2ETestSuite struct {
	e2e.SharedSuite
}

func TestPurchaseE2ESuite(t *testing.T) {
	suite.Run(t, new(PurchaseE2ETestSuite))
}

func (s *PurchaseE2ETestSuite) seedProduct(stock *int32) listing.Snapshot {
	snap := builder.NewListingBuilder().WithStatus(listing.StatusActive).WithStock(stock).BuildSnapshot()
	dbtest.InsertListing(s.T(), s.DB, snap)
	return snap
}

func (s *PurchaseE2ETestSuite) purchaseRequest(listingID uuid.UUID, quantity int32) map[string]any {
	req := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) {
		b.ListingID = listingID
		b.Quantity = quantity
	}).BuildCreateRequestDTO()
	return testutil.DtoMap(s.T(), req)
}

func (s *PurchaseE2ETestSuite) TestLifecycle() {
	s.Run("purchase decrements stock and cancel restores it", func() {
		l := s.seedProduct(ptr.Of(int32(10)))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/purchase/anonymous", s.purchaseRequest(l.ID, 3), "")
		var created resdto.PurchaseEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Regexp(trackingPattern, created.TrackingID)
		s.Equal("PENDING", created.Purchase.Status)
		s.Equal("499.00", created.Purchase.UnitPrice)
		s.Equal("1497.00", created.Purchase.TotalAmount)
		s.Equal(l.ProviderID, created.Purchase.SellerID)
		s.Equal(int32(7), *dbtest.StockOf(s.T(), s.DB, l.ID))

		url := "/purchase/" + created.TrackingID + "/cancel"
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, map[string]any{"buyer_email": "BO@example.com"}, "")
		var cancelled resdto.PurchaseEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cancelled)
		s.Equal("CANCELLED", cancelled.Purchase.Status)
		s.NotNil(cancelled.Purchase.CancelledAt)
		s.Equal(int32(10), *dbtest.StockOf(s.T(), s.DB, l.ID))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, map[string]any{"buyer_email": "bo@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("insufficient stock leaves stock untouched", func() {
		l := s.seedProduct(ptr.Of(int32(2)))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/purchase/anonymous", s.purchaseRequest(l.ID, 3), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		s.Equal(int32(2), *dbtest.StockOf(s.T(), s.DB, l.ID))
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "purchases", "listing_id = $1", l.ID))
	})

	s.Run("untracked stock is unlimited", func() {
		l := s.seedProduct(nil)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/purchase/anonymous", s.purchaseRequest(l.ID, 1000), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		s.Nil(dbtest.StockOf(s.T(), s.DB, l.ID))
	})

	s.Run("retry with the same Idempotency-Key replays the first order", func() {
		l := s.seedProduct(ptr.Of(int32(10)))
		headers := map[string]string{"Idempotency-Key": "checkout-" + uuid.NewString()}
		body := s.purchaseRequest(l.ID, 2)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/purchase/anonymous", body, headers, "")
		var first resdto.PurchaseEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &first)

		rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/purchase/anonymous", body, headers, "")
		var second resdto.PurchaseEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &second)

		s.Equal(first.TrackingID, second.TrackingID)
		s.Equal(int32(8), *dbtest.StockOf(s.T(), s.DB, l.ID))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "purchases", "listing_id = $1", l.ID))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "notification_jobs", "topic = $1", "purchase.created"))

		rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/purchase/anonymous", s.purchaseRequest(l.ID, 3), headers, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Idempotency-Key was already used with a different request")
	})

	s.Run("seller advances fulfilment one step at a time", func() {
		l := s.seedProduct(ptr.Of(int32(5)))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/purchase/anonymous", s.purchaseRequest(l.ID, 1), "")
		var created resdto.PurchaseEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		url := "/purchase/" + created.TrackingID + "/status"
		seller := s.TokenFor(l.ProviderID, "seller@example.com")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url, map[string]any{"status": "SHIPPED"}, seller)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")

		for _, next := range []string{"PAID", "processing", "SHIPPED"} {
			rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url, map[string]any{"status": next}, seller)
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		}

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/purchase/"+created.TrackingID, nil, "")
		var fetched resdto.PurchaseEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
		s.Equal("SHIPPED", fetched.Purchase.Status)
		s.NotNil(fetched.Purchase.PaidAt)
		s.NotNil(fetched.Purchase.ShippedAt)

		buyer := s.TokenFor(uuid.New(), "bo@example.com")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url, map[string]any{"status": "DELIVERED"}, buyer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("inactive listing cannot be purchased", func() {
		snap := builder.NewListingBuilder().BuildSnapshot()
		dbtest.InsertListing(s.T(), s.DB, snap)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/purchase/anonymous", s.purchaseRequest(snap.ID, 1), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
