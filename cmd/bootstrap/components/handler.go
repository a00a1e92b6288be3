package components

import (
	"marketplace-orders/internal/handler"
	"marketplace-orders/internal/handler/api"
	"marketplace-orders/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewPurchaseHandler,
		api.NewListingHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(b *api.BookingHandler, p *api.PurchaseHandler, l *api.ListingHandler) handler.Handlers {
	return handler.Handlers{Booking: b, Purchase: p, Listing: l}
}
