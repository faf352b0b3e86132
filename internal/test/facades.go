package test

import (
	"context"

	"github.com/polkiloo/fundvault/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) error
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (string, error)
	ResetFn        func(context.Context, string, string, string) error
}

// Register succeeds unless overridden.
func (s AuthFacadeStub) Register(ctx context.Context, username, password string) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, password)
	}
	return nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// ResetPassword succeeds unless overridden.
func (s AuthFacadeStub) ResetPassword(ctx context.Context, callerID, username, newPassword string) error {
	if s.ResetFn != nil {
		return s.ResetFn(ctx, callerID, username, newPassword)
	}
	return nil
}

// SavedFundsFacadeStub provides controllable behaviour for saved-fund endpoints.
type SavedFundsFacadeStub struct {
	ListFn   func(context.Context, string) ([]model.Fund, error)
	SaveFn   func(context.Context, string, model.Fund) error
	RemoveFn func(context.Context, string, model.Fund) error
}

// SavedFunds returns a single fund unless overridden.
func (s SavedFundsFacadeStub) SavedFunds(ctx context.Context, userID string) ([]model.Fund, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.Fund{{"id": "F1", "name": "Fund One"}}, nil
}

// SaveFund executes configured handler.
func (s SavedFundsFacadeStub) SaveFund(ctx context.Context, userID string, fund model.Fund) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, userID, fund)
	}
	return nil
}

// RemoveFund executes configured handler.
func (s SavedFundsFacadeStub) RemoveFund(ctx context.Context, userID string, fund model.Fund) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, fund)
	}
	return nil
}

// HealthCheckerStub reports configured health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

// FundVaultFacadeStub aggregates facade dependencies for HTTP layer tests.
type FundVaultFacadeStub struct {
	AuthFacadeStub
	SavedFundsFacadeStub
	HealthCheckerStub
}
