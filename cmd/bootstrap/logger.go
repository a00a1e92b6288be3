package bootstrap

import (
	"log/slog"
	"strings"

	"marketplace-orders/internal/handler/middleware"
	"marketplace-orders/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewZapLogger,
	),
)

// FxLogger routes fx lifecycle events through zap.
var FxLogger = fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: l.Named("fx")}
})

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}

// NewZapLogger backs the mailer and fx events. Release mode gets the JSON
// production encoder.
func NewZapLogger(cfg config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if gin.Mode() == gin.ReleaseMode {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.OutputPaths = []string{"stdout"}

	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
