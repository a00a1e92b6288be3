package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"marketplace-orders/cmd/bootstrap"
	"marketplace-orders/internal/infra/messaging"
	"marketplace-orders/internal/pkg/config"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/usecase/commands"
	"marketplace-orders/internal/usecase/shared"

	"go.uber.org/fx"
)

type workerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Logger    *slog.Logger
	Consumer  *messaging.Consumer
	Delivery  commands.NotificationDelivery
	Relay     commands.NotificationRelay
}

// startWorker consumes events into mail and periodically republishes parked ones.
func startWorker(p workerParams) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{}, 2)

	handle := func(ctx context.Context, ev shared.NotificationEvent) error {
		err := p.Delivery.Deliver(ctx, ev)
		if errs.Is(err, errs.ErrValidation) {
			// redelivery would fail the same way
			p.Logger.Warn("dropping undeliverable event",
				"routing_key", ev.RoutingKey, "reference", ev.Reference, "error", err.Error())
			return nil
		}
		return err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := p.Consumer.Connect(); err != nil {
				cancel()
				return err
			}
			p.Logger.Info("Notifier started",
				"queue", p.Config.Broker.Queue,
				"relay_interval", p.Config.Notifier.RelayInterval)

			go func() {
				defer func() { done <- struct{}{} }()
				if err := p.Consumer.Run(ctx, handle); err != nil {
					p.Logger.Error("Consumer stopped", "error", err)
				}
			}()
			go func() {
				defer func() { done <- struct{}{} }()
				relayLoop(ctx, p.Relay, p.Config.Notifier.RelayInterval, p.Logger)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			for range 2 {
				select {
				case <-done:
				case <-stopCtx.Done():
					p.Consumer.Close()
					return stopCtx.Err()
				}
			}
			p.Consumer.Close()
			p.Logger.Info("Notifier stopped")
			return nil
		},
	})
}

func relayLoop(ctx context.Context, relay commands.NotificationRelay, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res, err := relay.RunOnce(ctx)
			if err != nil {
				logger.Error("Relay pass failed", "error", err)
				continue
			}
			if res.Sent+res.Retried+res.Failed > 0 {
				logger.Info("Relay pass finished",
					"sent", res.Sent, "retried", res.Retried, "failed", res.Failed)
			}
		}
	}
}

func main() {
	app := fx.New(
		bootstrap.NotifierModule,
		bootstrap.FxLogger,
		fx.Invoke(startWorker),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Notifier failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("Notifier failed to stop cleanly", "error", err)
	}
}
