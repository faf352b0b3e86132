package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/fundvault/internal/domain/errors"
	"github.com/polkiloo/fundvault/internal/domain/model"
	"github.com/polkiloo/fundvault/internal/domain/repository"
)

// FundUseCase manages the saved-fund list of a user.
type FundUseCase struct {
	funds repository.FundRepository
}

// NewFundUseCase constructs FundUseCase.
func NewFundUseCase(funds repository.FundRepository) *FundUseCase {
	return &FundUseCase{funds: funds}
}

// List returns saved funds in insertion order. Never nil on success.
func (u *FundUseCase) List(ctx context.Context, userID string) ([]model.Fund, error) {
	funds, err := u.funds.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if funds == nil {
		funds = []model.Fund{}
	}
	return funds, nil
}

// Save appends fund to the end of the list. Duplicates are kept.
func (u *FundUseCase) Save(ctx context.Context, userID string, fund model.Fund) error {
	if !ValidateFund(fund) {
		return domainErrors.ErrInvalidFund
	}
	return u.funds.Append(ctx, userID, fund)
}

// Remove drops every saved fund whose id equals the id of fund.
// Removing an id that is not saved succeeds without changes.
func (u *FundUseCase) Remove(ctx context.Context, userID string, fund model.Fund) error {
	if !ValidateFund(fund) {
		return domainErrors.ErrInvalidFund
	}
	id, _ := fund.ID()
	return u.funds.RemoveByID(ctx, userID, id)
}
