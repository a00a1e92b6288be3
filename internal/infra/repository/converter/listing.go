package converter

import (
	"marketplace-orders/internal/domain/listing"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
	"marketplace-orders/internal/pkg/pgconv"
)

func ListingFromRow(row sqlc.Listings) (listing.Snapshot, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return listing.Snapshot{}, err
	}
	return listing.Snapshot{
		ID:               row.ID,
		ProviderID:       row.ProviderID,
		Type:             listing.Type(row.ListingType),
		Status:           listing.Status(row.Status),
		Title:            row.Title,
		ShortDescription: row.ShortDescription,
		LongDescription:  row.LongDescription,
		Location:         row.Location,
		ImageURL:         pgconv.StringPtrFromPgtype(row.ImageUrl),
		Features:         row.Features,
		Price:            price,
		Currency:         row.Currency,
		StockQuantity:    pgconv.Int32PtrFromPgtype(row.StockQuantity),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func ListingToUpdateStatusParams(expected listing.Status, l *listing.Listing) sqlc.UpdateListingStatusParams {
	s := l.Snapshot()
	return sqlc.UpdateListingStatusParams{
		Status:         string(s.Status),
		UpdatedAt:      pgconv.TimeToPgtype(s.UpdatedAt),
		ID:             s.ID,
		ExpectedStatus: string(expected),
	}
}
