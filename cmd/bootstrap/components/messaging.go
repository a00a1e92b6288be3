package components

import (
	"context"
	"log/slog"

	"marketplace-orders/internal/infra/messaging"
	"marketplace-orders/internal/pkg/config"
	"marketplace-orders/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier falls back to an offline notifier when the broker is down at
// start, so dispatched events are parked for the relay instead of blocking boot.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.Notifier {
	pub, err := messaging.NewPublisher(cfg.Broker)
	if err != nil {
		logger.Warn("broker unavailable, notifications will be parked", "error", err.Error())
		return messaging.Offline{Err: err}
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
