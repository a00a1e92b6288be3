package bootstrap

import (
	"time"

	"marketplace-orders/internal/pkg/config"
	"marketplace-orders/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// Only verification matters here; the duration applies to tokens minted by tooling.
const toolingTokenDuration = time.Hour

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.Secret == "" {
		panic("JWT_SECRET must not be empty")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, toolingTokenDuration)
}
