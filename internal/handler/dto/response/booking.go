package response

import (
	"time"

	"marketplace-orders/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                        uuid.UUID  `json:"id"`
	Reference                 string     `json:"reference"`
	ListingID                 uuid.UUID  `json:"listing_id"`
	ProviderID                uuid.UUID  `json:"provider_id"`
	ClientID                  *uuid.UUID `json:"client_id,omitempty"`
	ClientName                string     `json:"client_name"`
	ClientEmail               string     `json:"client_email"`
	ClientPhone               *string    `json:"client_phone,omitempty"`
	ProjectTitle              string     `json:"project_title"`
	ProjectDescription        *string    `json:"project_description,omitempty"`
	PreferredDate             *time.Time `json:"preferred_date,omitempty"`
	Amount                    string     `json:"amount"`
	Currency                  string     `json:"currency"`
	Status                    string     `json:"status"`
	ProviderResponse          *string    `json:"provider_response,omitempty"`
	CancellationReason        *string    `json:"cancellation_reason,omitempty"`
	CancelledBy               *string    `json:"cancelled_by,omitempty"`
	AutoCancelled             bool       `json:"auto_cancelled"`
	CancellationRequestedAt   *time.Time `json:"cancellation_requested_at,omitempty"`
	CancellationRequestedBy   *string    `json:"cancellation_requested_by,omitempty"`
	CancellationRequestReason *string    `json:"cancellation_request_reason,omitempty"`
	ResolutionNotes           *string    `json:"resolution_notes,omitempty"`
	CreatedAt                 time.Time  `json:"created_at"`
	ConfirmedAt               *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt               *time.Time `json:"completed_at,omitempty"`
	CancelledAt               *time.Time `json:"cancelled_at,omitempty"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

type BookingEnvelope struct {
	Success          bool             `json:"success"`
	BookingReference string           `json:"booking_reference,omitempty"`
	Booking          *BookingResponse `json:"booking"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	return copyView[BookingResponse](v)
}
