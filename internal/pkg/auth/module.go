package auth

import (
	"github.com/polkiloo/fundvault/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newPasswordHasher(p strategyParams) PasswordHasher {
	return NewBcryptHasher(p.Config.BcryptCost)
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewStrategy(p.Config.TokenStrategy, p.Config.JWTSecret, Options{TTL: p.Config.TokenTTL})
}

// NewStrategy selects a token strategy by name, falling back to JWT.
func NewStrategy(name, secret string, opts Options) Strategy {
	if name == "hmac" {
		return NewHMACStrategy(secret, opts)
	}
	return NewJWTStrategy(secret, opts)
}
