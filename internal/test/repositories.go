package test

import (
	"context"
	"fmt"
	"sync"

	domainErrors "github.com/polkiloo/fundvault/internal/domain/errors"
	"github.com/polkiloo/fundvault/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users   map[string]*model.User
	ByID    map[string]*model.User
	Next    int
	Err     error
	SaveErr error
	Saved   []model.User
	mu      sync.Mutex
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[string]*model.User),
		Next:  1,
	}
}

// UserID renders the identifier assigned to the n-th created user.
func UserID(n int) string {
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: UserID(s.Next), Username: username, PasswordHash: passwordHash, SavedFunds: []model.Fund{}, Version: 1}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return cloneUser(user), nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return cloneUser(user), nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return cloneUser(user), nil
	}
	return nil, domainErrors.ErrNotFound
}

// Save replaces the stored record when its version matches.
func (s *UserRepositoryStub) Save(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	stored, ok := s.ByID[user.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if stored.Version != user.Version {
		return domainErrors.ErrConflict
	}
	user.Version++
	updated := cloneUser(user)
	s.ByID[user.ID] = updated
	s.Users[updated.Username] = updated
	s.Saved = append(s.Saved, *cloneUser(user))
	return nil
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.SavedFunds = append(make([]model.Fund, 0, len(u.SavedFunds)), u.SavedFunds...)
	return &c
}

// FundRepositoryStub keeps saved funds per user in memory.
// A user exists when it has an entry in Funds.
type FundRepositoryStub struct {
	Funds    map[string][]model.Fund
	Err      error
	Removed  []any
	AppendFn func(context.Context, string, model.Fund) error
	mu       sync.Mutex
}

// NewFundRepositoryStub registers the given user ids with empty lists.
func NewFundRepositoryStub(userIDs ...string) *FundRepositoryStub {
	s := &FundRepositoryStub{Funds: make(map[string][]model.Fund)}
	for _, id := range userIDs {
		s.Funds[id] = []model.Fund{}
	}
	return s
}

// List returns a copy of the user's funds.
func (s *FundRepositoryStub) List(ctx context.Context, userID string) ([]model.Fund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	funds, ok := s.Funds[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return append([]model.Fund{}, funds...), nil
}

// Append adds fund at the end of the user's list.
func (s *FundRepositoryStub) Append(ctx context.Context, userID string, fund model.Fund) error {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, userID, fund)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	funds, ok := s.Funds[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	s.Funds[userID] = append(funds, fund)
	return nil
}

// RemoveByID filters out funds matching fundID.
func (s *FundRepositoryStub) RemoveByID(ctx context.Context, userID string, fundID any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	funds, ok := s.Funds[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	s.Removed = append(s.Removed, fundID)
	kept := make([]model.Fund, 0, len(funds))
	for _, f := range funds {
		if !f.MatchesID(fundID) {
			kept = append(kept, f)
		}
	}
	s.Funds[userID] = kept
	return nil
}
