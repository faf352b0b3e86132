package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/fundvault/internal/app"
	"github.com/polkiloo/fundvault/internal/config"
	"github.com/polkiloo/fundvault/internal/logger"
	"github.com/polkiloo/fundvault/internal/pkg/auth"
	"github.com/polkiloo/fundvault/internal/server/http/router"
	"github.com/polkiloo/fundvault/internal/storage/postgres"
	"github.com/polkiloo/fundvault/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
