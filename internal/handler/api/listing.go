package api

import (
	"net/http"

	reqdto "marketplace-orders/internal/handler/dto/request"
	resdto "marketplace-orders/internal/handler/dto/response"
	"marketplace-orders/internal/handler/httperr"
	"marketplace-orders/internal/handler/middleware"
	"marketplace-orders/internal/usecase/commands"
	"marketplace-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, view)
}

// @Summary Change listing status
// @Description Provider changes the listing status. Activation requires a complete listing; violations are listed in details.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpdateListingStatusRequest true "Target status"
// @Success 200 {object} resdto.ListingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /listings/{id}/status [patch]
func (h *ListingHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing id", nil)
		return
	}
	var req reqdto.UpdateListingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.ChangeStatus(c.Request.Context(), id, req.Status, middleware.GetCaller(c, ""))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, view)
}

func (h *ListingHandler) respond(c *gin.Context, view *queries.ListingView) {
	res, err := resdto.FromListingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ListingEnvelope{Success: true, Listing: res})
}
