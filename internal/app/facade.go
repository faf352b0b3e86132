package app

import (
	"context"

	"github.com/polkiloo/fundvault/internal/domain/model"
	"github.com/polkiloo/fundvault/internal/metrics"
	"github.com/polkiloo/fundvault/internal/usecase"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type FundFacade struct {
	auth   *usecase.AuthUseCase
	funds  *usecase.FundUseCase
	health HealthChecker
}

func NewFundFacade(auth *usecase.AuthUseCase, funds *usecase.FundUseCase, health HealthChecker) *FundFacade {
	return &FundFacade{auth: auth, funds: funds, health: health}
}

func (f *FundFacade) Register(ctx context.Context, username, password string) error {
	_, err := f.auth.Register(ctx, username, password)
	metrics.RecordAuth("register", err)
	return err
}

func (f *FundFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	metrics.RecordAuth("login", err)
	if err != nil {
		return "", err
	}
	metrics.TokensIssuedTotal.WithLabelValues(f.auth.StrategyName()).Inc()
	return token, nil
}

func (f *FundFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *FundFacade) ResetPassword(ctx context.Context, callerID, username, newPassword string) error {
	err := f.auth.ResetPassword(ctx, callerID, username, newPassword)
	metrics.RecordAuth("reset_password", err)
	return err
}

func (f *FundFacade) SavedFunds(ctx context.Context, userID string) ([]model.Fund, error) {
	return f.funds.List(ctx, userID)
}

func (f *FundFacade) SaveFund(ctx context.Context, userID string, fund model.Fund) error {
	if err := f.funds.Save(ctx, userID, fund); err != nil {
		return err
	}
	metrics.SavedFundMutationsTotal.WithLabelValues("save").Inc()
	return nil
}

func (f *FundFacade) RemoveFund(ctx context.Context, userID string, fund model.Fund) error {
	if err := f.funds.Remove(ctx, userID, fund); err != nil {
		return err
	}
	metrics.SavedFundMutationsTotal.WithLabelValues("remove").Inc()
	return nil
}

func (f *FundFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
