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
)

type PurchaseHandler struct {
	cmds commands.PurchaseCommands
	q    queries.PurchaseQueries
}

func NewPurchaseHandler(cmds commands.PurchaseCommands, q queries.PurchaseQueries) *PurchaseHandler {
	return &PurchaseHandler{cmds: cmds, q: q}
}

// @Summary Create purchase
// @Description Order a product listing. Stock is reserved atomically with the order.
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePurchaseRequest true "Create purchase request"
// @Param Idempotency-Key header string false "Replays the original response when the same request is retried"
// @Success 201 {object} resdto.PurchaseEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /purchase/anonymous [post]
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req reqdto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	cmd := req.ToCommand()
	cmd.IdempotencyKey = c.GetHeader("Idempotency-Key")

	view, err := h.cmds.Create(c.Request.Context(), cmd, middleware.GetCaller(c, req.BuyerEmail))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, view, true)
}

// @Summary Get purchase
// @Description Look up a purchase by tracking id
// @Tags purchases
// @Produce json
// @Param trackingId path string true "Tracking id (BMC-XXXXXX)"
// @Success 200 {object} resdto.PurchaseEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /purchase/{trackingId} [get]
func (h *PurchaseHandler) Get(c *gin.Context) {
	view, err := h.q.GetByTrackingID(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, view, false)
}

// @Summary Cancel purchase
// @Description Buyer cancels a PENDING or PAID purchase; stock is restored
// @Tags purchases
// @Accept json
// @Produce json
// @Param trackingId path string true "Tracking id"
// @Param request body reqdto.CancelPurchaseRequest false "Buyer email for anonymous orders"
// @Success 200 {object} resdto.PurchaseEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /purchase/{trackingId}/cancel [post]
func (h *PurchaseHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelPurchaseRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	view, err := h.cmds.Cancel(c.Request.Context(), c.Param("trackingId"), middleware.GetCaller(c, req.BuyerEmail))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, view, false)
}

// @Summary Update purchase status
// @Description Seller advances the purchase through fulfilment
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trackingId path string true "Tracking id"
// @Param request body reqdto.UpdatePurchaseStatusRequest true "Target status"
// @Success 200 {object} resdto.PurchaseEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /purchase/{trackingId}/status [patch]
func (h *PurchaseHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdatePurchaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.UpdateStatus(c.Request.Context(), c.Param("trackingId"), req.Status, middleware.GetCaller(c, ""))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, view, false)
}

func (h *PurchaseHandler) respond(c *gin.Context, status int, view *queries.PurchaseView, created bool) {
	res, err := resdto.FromPurchaseView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	env := resdto.PurchaseEnvelope{Success: true, Purchase: res}
	if created {
		env.TrackingID = view.TrackingID
	}
	c.JSON(status, env)
}
