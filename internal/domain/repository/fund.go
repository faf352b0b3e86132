package repository

import (
	"context"

	"github.com/polkiloo/fundvault/internal/domain/model"
)

// FundRepository mutates a user's saved funds with single atomic statements.
type FundRepository interface {
	List(ctx context.Context, userID string) ([]model.Fund, error)
	Append(ctx context.Context, userID string, fund model.Fund) error
	RemoveByID(ctx context.Context, userID string, fundID any) error
}
