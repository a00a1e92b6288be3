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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request a booking for a service listing. Authentication is optional; when present the booking is owned by the caller.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Param Idempotency-Key header string false "Replays the original response when the same request is retried"
// @Success 201 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	cmd := req.ToCommand()
	cmd.IdempotencyKey = c.GetHeader("Idempotency-Key")

	view, err := h.cmds.Create(c.Request.Context(), cmd, middleware.GetCaller(c, req.ClientEmail))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, view, true)
}

// @Summary Get booking
// @Description Look up a booking by its public reference
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference (BMC-BOOK-XXXXXX)"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{reference} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.q.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, view, false)
}

// @Summary Change booking status
// @Description Provider moves a booking along the status table
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Param request body reqdto.ChangeBookingStatusRequest true "Status change"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{reference} [patch]
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	var req reqdto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.ChangeStatus(c.Request.Context(), c.Param("reference"), req.ToCommand(), middleware.GetCaller(c, ""))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, view, false)
}

// @Summary Request cancellation
// @Description Client or provider asks for a booking to be cancelled
// @Tags bookings
// @Accept json
// @Produce json
// @Param reference path string true "Booking reference"
// @Param request body reqdto.CancellationRequestRequest true "Cancellation request"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{reference}/cancellation-request [patch]
func (h *BookingHandler) RequestCancellation(c *gin.Context) {
	var req reqdto.CancellationRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.RequestCancellation(c.Request.Context(), c.Param("reference"), req.ToCommand(), middleware.GetCaller(c, req.ClientEmail))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, view, false)
}

// @Summary Resolve cancellation request
// @Description Resolve a pending cancellation request to cancelled, confirmed or completed
// @Tags bookings
// @Accept json
// @Produce json
// @Param reference path string true "Booking reference"
// @Param request body reqdto.ResolveCancellationRequest true "Resolution"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{reference}/resolve [patch]
func (h *BookingHandler) Resolve(c *gin.Context) {
	var req reqdto.ResolveCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.ResolveCancellation(c.Request.Context(), c.Param("reference"), req.ToCommand(), middleware.GetCaller(c, req.ClientEmail))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, view, false)
}

func (h *BookingHandler) respond(c *gin.Context, status int, view *queries.BookingView, created bool) {
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	env := resdto.BookingEnvelope{Success: true, Booking: res}
	if created {
		env.BookingReference = view.Reference
	}
	c.JSON(status, env)
}
