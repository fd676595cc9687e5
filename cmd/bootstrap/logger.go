package bootstrap

import (
	"log/slog"

	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		middleware.NewLogger,
		func(cfg config.Config) config.LogConfig { return cfg.Log },
		func(l *middleware.Logger) *slog.Logger { return l.GetSlogLogger() },
	),
)
