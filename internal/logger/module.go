package logger

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/fundvault/internal/config"
)

// Module wires slog logger for dependency injection.
var Module = fx.Provide(newLogger)

type loggerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
}

func newLogger(p loggerParams) *slog.Logger {
	opts := Options{Level: p.Config.LogLevel}
	if p.Config.LogFile != "" {
		file := NewRotatingFile(p.Config.LogFile)
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return file.Close()
			},
		})
		opts.File = file
	}
	return New(opts)
}
