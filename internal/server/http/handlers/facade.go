package handlers

import (
	"context"

	"github.com/polkiloo/fundvault/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (string, error)
	ResetPassword(ctx context.Context, callerID, username, newPassword string) error
}

// SavedFundsFacade encapsulates saved-fund operations exposed via HTTP.
type SavedFundsFacade interface {
	SavedFunds(ctx context.Context, userID string) ([]model.Fund, error)
	SaveFund(ctx context.Context, userID string, fund model.Fund) error
	RemoveFund(ctx context.Context, userID string, fund model.Fund) error
}

// HealthChecker reports readiness of backing services.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Facade aggregates the full set of operations used across handlers.
type Facade interface {
	AuthFacade
	SavedFundsFacade
	HealthChecker
}
