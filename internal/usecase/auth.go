package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/fundvault/internal/domain/errors"
	"github.com/polkiloo/fundvault/internal/domain/model"
	"github.com/polkiloo/fundvault/internal/domain/repository"
	pkgAuth "github.com/polkiloo/fundvault/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user with an empty saved-fund list.
func (u *AuthUseCase) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}

	return usr, nil
}

// Authenticate validates credentials and returns auth token.
// Unknown usernames and wrong passwords are reported identically.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// ResetPassword replaces the password of username.
// An empty callerID skips the ownership check. Otherwise the caller is loaded
// first and must own username, so the target is never looked up for others.
func (u *AuthUseCase) ResetPassword(ctx context.Context, callerID, username, newPassword string) error {
	username = strings.TrimSpace(username)
	if username == "" || newPassword == "" {
		return domainErrors.ErrInvalidCredentials
	}

	usr, err := u.resetTarget(ctx, callerID, username)
	if err != nil {
		return err
	}

	hash, err := u.hash(newPassword)
	if err != nil {
		return err
	}
	usr.PasswordHash = hash

	return u.users.Save(ctx, usr)
}

func (u *AuthUseCase) resetTarget(ctx context.Context, callerID, username string) (*model.User, error) {
	if callerID == "" {
		return u.users.GetByUsername(ctx, username)
	}

	caller, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrForbidden
		}
		return nil, err
	}
	if caller.Username != username {
		return nil, domainErrors.ErrForbidden
	}
	return caller, nil
}

// hash rejects passwords bcrypt cannot take as invalid input.
func (u *AuthUseCase) hash(password string) (string, error) {
	hash, err := u.hasher.Hash(password)
	if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
		return "", domainErrors.ErrInvalidCredentials
	}
	return hash, err
}

// StrategyName reports the configured token strategy.
func (u *AuthUseCase) StrategyName() string {
	return u.tokens.Name()
}
