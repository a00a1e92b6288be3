package converter

import (
	"marketplace-orders/internal/domain/booking"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
	"marketplace-orders/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	s := b.Snapshot()
	return sqlc.CreateBookingParams{
		ID:                 s.ID,
		Reference:          s.Reference,
		ListingID:          s.ListingID,
		ProviderID:         s.ProviderID,
		ClientID:           pgconv.UUIDPtrToPgtype(s.ClientID),
		ClientName:         s.ClientName,
		ClientEmail:        s.ClientEmail,
		ClientPhone:        pgconv.StringPtrToPgtype(s.ClientPhone),
		ProjectTitle:       s.ProjectTitle,
		ProjectDescription: pgconv.StringPtrToPgtype(s.ProjectDescription),
		PreferredDate:      pgconv.TimePtrToPgtype(s.PreferredDate),
		Amount:             pgconv.NumericFromDecimal(s.Amount),
		Currency:           s.Currency,
		Status:             string(s.Status),
		CreatedAt:          pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:          pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func BookingToUpdateStateParams(expected booking.Status, b *booking.Booking) sqlc.UpdateBookingStateParams {
	s := b.Snapshot()
	return sqlc.UpdateBookingStateParams{
		Status:                    string(s.Status),
		ProviderResponse:          pgconv.StringPtrToPgtype(s.ProviderResponse),
		CancellationReason:        pgconv.StringPtrToPgtype(s.CancellationReason),
		CancelledBy:               actorToPgtype(s.CancelledBy),
		AutoCancelled:             s.AutoCancelled,
		CancellationRequestedAt:   pgconv.TimePtrToPgtype(s.CancellationRequestedAt),
		CancellationRequestedBy:   actorToPgtype(s.CancellationRequestedBy),
		CancellationRequestReason: pgconv.StringPtrToPgtype(s.CancellationRequestReason),
		ResolutionNotes:           pgconv.StringPtrToPgtype(s.ResolutionNotes),
		ConfirmedAt:               pgconv.TimePtrToPgtype(s.ConfirmedAt),
		CompletedAt:               pgconv.TimePtrToPgtype(s.CompletedAt),
		CancelledAt:               pgconv.TimePtrToPgtype(s.CancelledAt),
		UpdatedAt:                 pgconv.TimeToPgtype(s.UpdatedAt),
		Reference:                 s.Reference,
		ExpectedStatus:            string(expected),
	}
}

func BookingFromRow(row sqlc.Bookings) (booking.Snapshot, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return booking.Snapshot{}, err
	}
	return booking.Snapshot{
		ID:                        row.ID,
		Reference:                 row.Reference,
		ListingID:                 row.ListingID,
		ProviderID:                row.ProviderID,
		ClientID:                  pgconv.UUIDPtrFromPgtype(row.ClientID),
		ClientName:                row.ClientName,
		ClientEmail:               row.ClientEmail,
		ClientPhone:               pgconv.StringPtrFromPgtype(row.ClientPhone),
		ProjectTitle:              row.ProjectTitle,
		ProjectDescription:        pgconv.StringPtrFromPgtype(row.ProjectDescription),
		PreferredDate:             pgconv.TimePtrFromPgtype(row.PreferredDate),
		Amount:                    amount,
		Currency:                  row.Currency,
		Status:                    booking.Status(row.Status),
		ProviderResponse:          pgconv.StringPtrFromPgtype(row.ProviderResponse),
		CancellationReason:        pgconv.StringPtrFromPgtype(row.CancellationReason),
		CancelledBy:               actorFromPgtype(row.CancelledBy),
		AutoCancelled:             row.AutoCancelled,
		CancellationRequestedAt:   pgconv.TimePtrFromPgtype(row.CancellationRequestedAt),
		CancellationRequestedBy:   actorFromPgtype(row.CancellationRequestedBy),
		CancellationRequestReason: pgconv.StringPtrFromPgtype(row.CancellationRequestReason),
		ResolutionNotes:           pgconv.StringPtrFromPgtype(row.ResolutionNotes),
		CreatedAt:                 pgconv.TimeFromPgtype(row.CreatedAt),
		ConfirmedAt:               pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CompletedAt:               pgconv.TimePtrFromPgtype(row.CompletedAt),
		CancelledAt:               pgconv.TimePtrFromPgtype(row.CancelledAt),
		UpdatedAt:                 pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func actorToPgtype(a *booking.Actor) pgtype.Text {
	if a == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: string(*a), Valid: true}
}

func actorFromPgtype(t pgtype.Text) *booking.Actor {
	if !t.Valid {
		return nil
	}
	a := booking.Actor(t.String)
	return &a
}
