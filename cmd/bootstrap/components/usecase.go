package components

import (
	"log/slog"

	"marketplace-orders/internal/domain/booking"
	"marketplace-orders/internal/pkg/clock"
	"marketplace-orders/internal/pkg/config"
	"marketplace-orders/internal/usecase"
	"marketplace-orders/internal/usecase/commands"
	"marketplace-orders/internal/usecase/queries"
	"marketplace-orders/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingStateMachine,
	shared.NewNotificationDispatcher,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewPurchaseCommands,
		commands.NewListingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewPurchaseQueries,
		queries.NewListingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingStateMachine(cfg config.Config, logger *slog.Logger) booking.StateMachine {
	policy, err := booking.ParseSameStatusPolicy(cfg.Booking.SameStatusPolicy)
	if err != nil {
		logger.Warn("unknown same-status policy, rejecting same-status updates",
			"policy", cfg.Booking.SameStatusPolicy)
	}
	return booking.NewStateMachine(policy)
}
