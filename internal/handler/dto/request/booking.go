package request

import (
	"time"

	"marketplace-orders/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ListingID          uuid.UUID  `json:"listing_id" binding:"required"`
	ProjectTitle       string     `json:"project_title" binding:"required,max=200"`
	ProjectDescription *string    `json:"project_description" binding:"omitempty,max=5000"`
	PreferredDate      *time.Time `json:"preferred_date"`
	ClientName         string     `json:"client_name" binding:"required,max=200"`
	ClientEmail        string     `json:"client_email" binding:"required,email"`
	ClientPhone        *string    `json:"client_phone" binding:"omitempty,max=50"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ListingID:          r.ListingID,
		ProjectTitle:       r.ProjectTitle,
		ProjectDescription: r.ProjectDescription,
		PreferredDate:      r.PreferredDate,
		ClientName:         r.ClientName,
		ClientEmail:        r.ClientEmail,
		ClientPhone:        r.ClientPhone,
	}
}

type ChangeBookingStatusRequest struct {
	Status             string  `json:"status" binding:"required"`
	ProviderResponse   *string `json:"providerResponse" binding:"omitempty,max=2000"`
	CancellationReason *string `json:"cancellationReason" binding:"omitempty,max=2000"`
	CancelledBy        *string `json:"cancelledBy"`
}

func (r *ChangeBookingStatusRequest) ToCommand() commands.ChangeBookingStatusRequest {
	return commands.ChangeBookingStatusRequest{
		Status:             r.Status,
		ProviderResponse:   r.ProviderResponse,
		CancellationReason: r.CancellationReason,
		CancelledBy:        r.CancelledBy,
	}
}

type CancellationRequestRequest struct {
	Actor       string `json:"actor" binding:"required,oneof=client provider"`
	Reason      string `json:"reason" binding:"required,max=2000"`
	ClientEmail string `json:"clientEmail" binding:"omitempty,email"`
}

func (r *CancellationRequestRequest) ToCommand() commands.RequestCancellationRequest {
	return commands.RequestCancellationRequest{
		Actor:  r.Actor,
		Reason: r.Reason,
	}
}

type ResolveCancellationRequest struct {
	Status           string  `json:"status" binding:"required,oneof=cancelled confirmed completed"`
	ResolutionNotes  *string `json:"resolutionNotes" binding:"omitempty,max=2000"`
	ProviderResponse *string `json:"providerResponse" binding:"omitempty,max=2000"`
	// The recorded actor is taken from the authorized caller.
	CancelledBy *string `json:"cancelledBy"`
	ClientEmail string  `json:"clientEmail" binding:"omitempty,email"`
}

func (r *ResolveCancellationRequest) ToCommand() commands.ResolveCancellationRequest {
	return commands.ResolveCancellationRequest{
		Resolution:       r.Status,
		ResolutionNotes:  r.ResolutionNotes,
		ProviderResponse: r.ProviderResponse,
	}
}
