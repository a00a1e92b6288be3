package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marketplace-orders/internal/handler/api"
	"marketplace-orders/internal/handler/middleware"
	"marketplace-orders/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking  *api.BookingHandler
	Purchase *api.PurchaseHandler
	Listing  *api.ListingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, rateLimit)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{rateLimit.Limit()}
	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	bookings := engine.Group("/bookings")
	bookings.Use(authMiddleware.OptionalAuth())
	addRoutes(bookings, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: limited},
		{Method: http.MethodGet, Path: "/:reference", Handler: h.Booking.Get},
		{Method: http.MethodPatch, Path: "/:reference", Handler: h.Booking.ChangeStatus, Mw: requireAuth},
		{Method: http.MethodPatch, Path: "/:reference/cancellation-request", Handler: h.Booking.RequestCancellation, Mw: limited},
		{Method: http.MethodPatch, Path: "/:reference/resolve", Handler: h.Booking.Resolve},
	})

	purchases := engine.Group("/purchase")
	purchases.Use(authMiddleware.OptionalAuth())
	addRoutes(purchases, []route{
		{Method: http.MethodPost, Path: "/anonymous", Handler: h.Purchase.Create, Mw: limited},
		{Method: http.MethodGet, Path: "/:trackingId", Handler: h.Purchase.Get},
		{Method: http.MethodPost, Path: "/:trackingId/cancel", Handler: h.Purchase.Cancel, Mw: limited},
		{Method: http.MethodPatch, Path: "/:trackingId/status", Handler: h.Purchase.UpdateStatus, Mw: requireAuth},
	})

	listings := engine.Group("/listings")
	addRoutes(listings, []route{
		{Method: http.MethodGet, Path: "/:id", Handler: h.Listing.Get},
		{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Listing.ChangeStatus, Mw: requireAuth},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
