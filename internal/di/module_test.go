package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/fundvault/internal/app"
	"github.com/polkiloo/fundvault/internal/config"
	"github.com/polkiloo/fundvault/internal/domain/repository"
	"github.com/polkiloo/fundvault/internal/storage/postgres"
	"github.com/polkiloo/fundvault/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		TokenStrategy:   "jwt",
		BcryptCost:      4,
		LogLevel:        "info",
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	fundRepo := test.NewFundRepositoryStub()

	var (
		facade *app.FundFacade
		engine *gin.Engine
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(app.HealthChecker(test.HealthCheckerStub{})),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.FundRepository(fundRepo)),
		),
		fx.Populate(&facade, &engine),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected fund facade instance")
	}
	if engine == nil {
		t.Fatal("expected gin engine instance")
	}
}
