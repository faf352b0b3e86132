package repository

import (
	"context"

	"github.com/polkiloo/fundvault/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	// Save persists password hash and saved funds if the stored version still
	// equals user.Version, and bumps the version on success.
	Save(ctx context.Context, user *model.User) error
}
