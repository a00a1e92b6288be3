//go:build unit

package purchase_test

import (
	"testing"
	"time"

	"marketplace-orders/internal/domain/auth"
	"marketplace-orders/internal/domain/purchase"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchase(t *testing.T) {
	t.Run("computes total from unit price and quantity", func(t *testing.T) {
		b := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) {
			b.UnitPrice = decimal.RequireFromString("19.99")
			b.Quantity = 3
			b.BuyerEmail = " Bo@Example.com"
		})
		p, err := b.BuildDomain()
		require.NoError(t, err)

		s := p.Snapshot()
		assert.True(t, decimal.RequireFromString("59.97").Equal(s.TotalAmount), "got %s", s.TotalAmount)
		assert.Equal(t, purchase.StatusPending, s.Status)
		assert.Equal(t, "bo@example.com", s.BuyerEmail)
		assert.Nil(t, s.PaidAt)
		assert.Nil(t, s.CancelledAt)
	})

	cases := []struct {
		name   string
		mutate func(*builder.PurchaseBuilder)
	}{
		{"zero quantity", func(b *builder.PurchaseBuilder) { b.Quantity = 0 }},
		{"negative quantity", func(b *builder.PurchaseBuilder) { b.Quantity = -2 }},
		{"bad tracking id", func(b *builder.PurchaseBuilder) { b.TrackingID = "BMC-BOOK-ABC123" }},
		{"missing buyer name", func(b *builder.PurchaseBuilder) { b.BuyerName = " " }},
		{"bad email", func(b *builder.PurchaseBuilder) { b.BuyerEmail = "bo" }},
		{"free item", func(b *builder.PurchaseBuilder) { b.UnitPrice = decimal.Zero }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewPurchaseBuilder().With(tc.mutate).BuildDomain()
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestCancel(t *testing.T) {
	at := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	for _, s := range []purchase.Status{purchase.StatusPending, purchase.StatusPaid} {
		t.Run("allowed from "+string(s), func(t *testing.T) {
			p := builder.NewPurchaseBuilder().WithStatus(s).BuildReconstructed()

			change, err := p.Cancel(at)
			require.NoError(t, err)
			assert.Equal(t, s, change.From)
			assert.Equal(t, purchase.StatusCancelled, change.Next.Status())
			require.NotNil(t, change.Next.Snapshot().CancelledAt)
			assert.Equal(t, at, *change.Next.Snapshot().CancelledAt)
			assert.Equal(t, s, p.Status(), "receiver must not be mutated")
		})
	}

	for _, s := range []purchase.Status{purchase.StatusProcessing, purchase.StatusShipped, purchase.StatusDelivered, purchase.StatusCancelled} {
		t.Run("rejected from "+string(s), func(t *testing.T) {
			p := builder.NewPurchaseBuilder().WithStatus(s).BuildReconstructed()

			_, err := p.Cancel(at)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidState))
			assert.Contains(t, err.Error(), string(s))
		})
	}

	t.Run("second cancel fails the precondition", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().BuildReconstructed()
		change, err := p.Cancel(at)
		require.NoError(t, err)

		_, err = change.Next.Cancel(at.Add(time.Minute))
		assert.True(t, errs.Is(err, errs.ErrInvalidState))
	})
}

func TestAdvance(t *testing.T) {
	at := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	t.Run("full fulfilment path stamps timestamps", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().BuildReconstructed()
		for _, target := range []purchase.Status{purchase.StatusPaid, purchase.StatusProcessing, purchase.StatusShipped, purchase.StatusDelivered} {
			change, err := p.Advance(target, at)
			require.NoError(t, err, "to %s", target)
			p = change.Next
		}
		s := p.Snapshot()
		assert.Equal(t, purchase.StatusDelivered, s.Status)
		assert.NotNil(t, s.PaidAt)
		assert.NotNil(t, s.ShippedAt)
		assert.NotNil(t, s.DeliveredAt)
		assert.Nil(t, s.CancelledAt)
	})

	cases := []struct {
		name  string
		from  purchase.Status
		to    purchase.Status
		errIs error
	}{
		{"skip ahead", purchase.StatusPending, purchase.StatusShipped, errs.ErrInvalidTransition},
		{"backwards", purchase.StatusShipped, purchase.StatusPaid, errs.ErrInvalidTransition},
		{"from terminal", purchase.StatusDelivered, purchase.StatusShipped, errs.ErrInvalidTransition},
		{"same status", purchase.StatusPaid, purchase.StatusPaid, errs.ErrInvalidTransition},
		{"cancel through advance", purchase.StatusPending, purchase.StatusCancelled, errs.ErrValidation},
		{"unknown", purchase.StatusPending, purchase.Status("LOST"), errs.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewPurchaseBuilder().WithStatus(tc.from).BuildReconstructed().Advance(tc.to, at)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
		})
	}
}

func TestAuthorize(t *testing.T) {
	buyerID := uuid.New()

	t.Run("buyer by account", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().WithBuyerID(buyerID).BuildReconstructed()

		assert.NoError(t, p.AuthorizeBuyer(auth.Authenticated(auth.Identity{UserID: buyerID}, "")))
		assert.True(t, errs.Is(p.AuthorizeBuyer(auth.Authenticated(auth.Identity{UserID: uuid.New()}, "")), errs.ErrForbidden))
		assert.True(t, errs.Is(p.AuthorizeBuyer(auth.Anonymous("bo@example.com")), errs.ErrUnauthorized))
	})

	t.Run("buyer by email", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().BuildReconstructed()

		assert.NoError(t, p.AuthorizeBuyer(auth.Anonymous("BO@example.com")))
		assert.True(t, errs.Is(p.AuthorizeBuyer(auth.Anonymous("eve@example.com")), errs.ErrForbidden))
		assert.True(t, errs.Is(p.AuthorizeBuyer(auth.Anonymous("")), errs.ErrUnauthorized))
	})

	t.Run("seller", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().BuildReconstructed()

		assert.NoError(t, p.AuthorizeSeller(auth.Authenticated(auth.Identity{UserID: p.SellerID()}, "")))
		assert.True(t, errs.Is(p.AuthorizeSeller(auth.Anonymous("bo@example.com")), errs.ErrUnauthorized))
	})
}

func TestTrackingID(t *testing.T) {
	id, err := purchase.NewTrackingID()
	require.NoError(t, err)
	assert.Regexp(t, `^BMC-[A-Z0-9]{6}$`, id)
	assert.NoError(t, purchase.ValidateTrackingID(id))
	assert.Error(t, purchase.ValidateTrackingID("bmc-abc123"))
}
