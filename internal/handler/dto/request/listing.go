package request

type UpdateListingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
