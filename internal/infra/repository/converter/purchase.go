package converter

import (
	"marketplace-orders/internal/domain/purchase"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
	"marketplace-orders/internal/pkg/pgconv"
)

func PurchaseToCreateParams(p *purchase.Purchase) sqlc.CreatePurchaseParams {
	s := p.Snapshot()
	return sqlc.CreatePurchaseParams{
		ID:              s.ID,
		TrackingID:      s.TrackingID,
		ListingID:       s.ListingID,
		SellerID:        s.SellerID,
		BuyerID:         pgconv.UUIDPtrToPgtype(s.BuyerID),
		BuyerName:       s.BuyerName,
		BuyerEmail:      s.BuyerEmail,
		BuyerPhone:      pgconv.StringPtrToPgtype(s.BuyerPhone),
		ShippingAddress: pgconv.StringPtrToPgtype(s.ShippingAddress),
		Quantity:        s.Quantity,
		UnitPrice:       pgconv.NumericFromDecimal(s.UnitPrice),
		TotalAmount:     pgconv.NumericFromDecimal(s.TotalAmount),
		Currency:        s.Currency,
		Status:          string(s.Status),
		CreatedAt:       pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func PurchaseToUpdateStateParams(expected purchase.Status, p *purchase.Purchase) sqlc.UpdatePurchaseStateParams {
	s := p.Snapshot()
	return sqlc.UpdatePurchaseStateParams{
		Status:         string(s.Status),
		PaidAt:         pgconv.TimePtrToPgtype(s.PaidAt),
		ShippedAt:      pgconv.TimePtrToPgtype(s.ShippedAt),
		DeliveredAt:    pgconv.TimePtrToPgtype(s.DeliveredAt),
		CancelledAt:    pgconv.TimePtrToPgtype(s.CancelledAt),
		UpdatedAt:      pgconv.TimeToPgtype(s.UpdatedAt),
		TrackingID:     s.TrackingID,
		ExpectedStatus: string(expected),
	}
}

func PurchaseFromRow(row sqlc.Purchases) (purchase.Snapshot, error) {
	unitPrice, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return purchase.Snapshot{}, err
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return purchase.Snapshot{}, err
	}
	return purchase.Snapshot{
		ID:              row.ID,
		TrackingID:      row.TrackingID,
		ListingID:       row.ListingID,
		SellerID:        row.SellerID,
		BuyerID:         pgconv.UUIDPtrFromPgtype(row.BuyerID),
		BuyerName:       row.BuyerName,
		BuyerEmail:      row.BuyerEmail,
		BuyerPhone:      pgconv.StringPtrFromPgtype(row.BuyerPhone),
		ShippingAddress: pgconv.StringPtrFromPgtype(row.ShippingAddress),
		Quantity:        row.Quantity,
		UnitPrice:       unitPrice,
		TotalAmount:     total,
		Currency:        row.Currency,
		Status:          purchase.Status(row.Status),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		PaidAt:          pgconv.TimePtrFromPgtype(row.PaidAt),
		ShippedAt:       pgconv.TimePtrFromPgtype(row.ShippedAt),
		DeliveredAt:     pgconv.TimePtrFromPgtype(row.DeliveredAt),
		CancelledAt:     pgconv.TimePtrFromPgtype(row.CancelledAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
