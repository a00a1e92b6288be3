package components

import (
	"log/slog"

	"marketplace-orders/internal/infra/mailer"
	"marketplace-orders/internal/infra/messaging"
	"marketplace-orders/internal/pkg/clock"
	"marketplace-orders/internal/pkg/config"
	"marketplace-orders/internal/usecase/commands"
	"marketplace-orders/internal/usecase/shared"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		clock.NewRealClock,
		NewMailer,
		NewConsumer,
		NewRelay,
		commands.NewNotificationDelivery,
	),
)

func NewMailer(cfg config.Config, logger *zap.Logger) shared.Mailer {
	return mailer.NewLogMailer(cfg.Notifier.MailFrom, logger.Named("mailer"))
}

func NewConsumer(cfg config.Config, logger *slog.Logger) *messaging.Consumer {
	return messaging.NewConsumer(cfg.Broker, logger)
}

func NewRelay(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.NotificationRelay {
	return commands.NewNotificationRelay(uow, notifier, clk, logger, commands.RelayOptions{
		BatchSize:   cfg.Notifier.BatchSize,
		MaxAttempts: cfg.Notifier.MaxAttempts,
		RetryDelay:  cfg.Notifier.RetryDelay,
	})
}
