package bootstrap

import (
	"marketplace-orders/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the HTTP API.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.MessagingModule,
	components.RedisModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// NotifierModule wires the notification worker: consumer, relay and mailer.
var NotifierModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.MessagingModule,
	components.NotifierModule,
)
