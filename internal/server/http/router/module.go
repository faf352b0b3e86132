package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/fundvault/internal/app"
	"github.com/polkiloo/fundvault/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	func(f *app.FundFacade) handlers.Facade { return f },
	Setup,
)
