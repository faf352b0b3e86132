package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	domainErrors "github.com/polkiloo/fundvault/internal/domain/errors"
	pkgAuth "github.com/polkiloo/fundvault/internal/pkg/auth"
	testhelpers "github.com/polkiloo/fundvault/internal/test"
)

func newAuthUseCase() (*AuthUseCase, *testhelpers.UserRepositoryStub) {
	repo := testhelpers.NewUserRepositoryStub()
	return NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{}), repo
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	uc, repo := newAuthUseCase()

	ctx := context.Background()
	user, err := uc.Register(ctx, "alice", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected user to have ID assigned")
	}
	if user.SavedFunds == nil || len(user.SavedFunds) != 0 {
		t.Fatalf("expected empty saved funds, got %v", user.SavedFunds)
	}
	stored, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	uc, _ := newAuthUseCase()

	ctx := context.Background()
	if _, err := uc.Register(ctx, "bob", "secret"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, err := uc.Register(ctx, "bob", "other"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	uc, _ := newAuthUseCase()

	ctx := context.Background()
	user, err := uc.Register(ctx, "carol", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	_, token, err := uc.Authenticate(ctx, "carol", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-"+user.ID {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc, _ := newAuthUseCase()

	id, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != "42" {
		t.Fatalf("expected id 42, got %q", id)
	}

	if _, err := uc.ParseToken("bad-token"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}

	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc, _ := newAuthUseCase()
	if _, err := uc.Register(context.Background(), "   ", "password"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, err := uc.Register(context.Background(), "user", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, testhelpers.StrategyStub{})
	if _, err := uc.Register(context.Background(), "user", "pass"); err == nil {
		t.Fatal("expected hashing error")
	}
}

func TestAuthUseCaseRegisterRepositoryError(t *testing.T) {
	uc, repo := newAuthUseCase()
	repo.Err = fmt.Errorf("db down")
	if _, err := uc.Register(context.Background(), "user", "pass"); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestAuthUseCaseAuthenticateNotFound(t *testing.T) {
	uc, _ := newAuthUseCase()
	if _, _, err := uc.Authenticate(context.Background(), "absent", "pass"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateIssueTokenError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{IssueFn: func(string) (string, error) {
		return "", fmt.Errorf("issue error")
	}}
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, strategy)
	if _, err := uc.Register(context.Background(), "user", "pass"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "user", "pass"); err == nil {
		t.Fatal("expected issue error on authenticate")
	}
}

func TestAuthUseCaseAuthenticateRepositoryError(t *testing.T) {
	uc, repo := newAuthUseCase()
	if _, err := uc.Register(context.Background(), "user", "pass"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	repo.Err = fmt.Errorf("storage unavailable")
	if _, _, err := uc.Authenticate(context.Background(), "user", "pass"); err == nil || err.Error() != "storage unavailable" {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateValidation(t *testing.T) {
	uc, _ := newAuthUseCase()
	if _, _, err := uc.Authenticate(context.Background(), "", "pass"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "user", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthUseCaseTrimsUsername(t *testing.T) {
	uc, _ := newAuthUseCase()
	if _, err := uc.Register(context.Background(), "  user  ", "pass"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "  user  ", "pass"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
}

func TestAuthUseCaseResetPassword(t *testing.T) {
	uc, repo := newAuthUseCase()
	ctx := context.Background()
	user, err := uc.Register(ctx, "erin", "old")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	if err := uc.ResetPassword(ctx, user.ID, "erin", "new"); err != nil {
		t.Fatalf("reset returned error: %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "erin", "old"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected old password to fail, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "erin", "new"); err != nil {
		t.Fatalf("expected new password to work, got %v", err)
	}
	if len(repo.Saved) != 1 || repo.Saved[0].Version != 2 {
		t.Fatalf("expected one versioned save, got %+v", repo.Saved)
	}
}

func TestAuthUseCaseResetPasswordWithoutCaller(t *testing.T) {
	uc, _ := newAuthUseCase()
	ctx := context.Background()
	if _, err := uc.Register(ctx, "frank", "old"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if err := uc.ResetPassword(ctx, "", "frank", "new"); err != nil {
		t.Fatalf("reset without caller returned error: %v", err)
	}
}

func TestAuthUseCaseResetPasswordErrors(t *testing.T) {
	uc, repo := newAuthUseCase()
	ctx := context.Background()
	user, err := uc.Register(ctx, "gina", "old")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	if err := uc.ResetPassword(ctx, user.ID, "gina", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for empty password, got %v", err)
	}
	if err := uc.ResetPassword(ctx, "", "nobody", "new"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := uc.ResetPassword(ctx, "intruder", "gina", "new"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	repo.SaveErr = domainErrors.ErrConflict
	if err := uc.ResetPassword(ctx, user.ID, "gina", "new"); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	repo.SaveErr = nil

	failing := NewAuthUseCase(repo, testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, testhelpers.StrategyStub{})
	if err := failing.ResetPassword(ctx, user.ID, "gina", "new"); err == nil {
		t.Fatal("expected hashing error")
	}
}

func TestUserRepositoryStubDetectsStaleSave(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	ctx := context.Background()
	if _, err := repo.Create(ctx, "user", "hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, _ := repo.GetByUsername(ctx, "user")
	second, _ := repo.GetByUsername(ctx, "user")

	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, second); err != domainErrors.ErrConflict {
		t.Fatalf("expected conflict on stale save, got %v", err)
	}
}

func TestAuthUseCaseStrategyName(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{NameVal: "jwt"})
	if uc.StrategyName() != "jwt" {
		t.Fatalf("unexpected strategy name %q", uc.StrategyName())
	}
}

func TestAuthUseCaseRejectsOverlongPassword(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, pkgAuth.NewBcryptHasher(4), testhelpers.StrategyStub{})
	ctx := context.Background()
	long := strings.Repeat("p", 73)

	if _, err := uc.Register(ctx, "alice", long); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for 73 byte password, got %v", err)
	}
	if _, err := repo.GetByUsername(ctx, "alice"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected no user stored, got %v", err)
	}

	user, err := uc.Register(ctx, "alice", strings.Repeat("p", 72))
	if err != nil {
		t.Fatalf("register with 72 byte password returned error: %v", err)
	}
	if err := uc.ResetPassword(ctx, user.ID, "alice", long); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials on reset, got %v", err)
	}
}

func TestAuthUseCaseResetPasswordHidesOtherUsers(t *testing.T) {
	uc, repo := newAuthUseCase()
	ctx := context.Background()
	caller, err := uc.Register(ctx, "hana", "old")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, err := uc.Register(ctx, "ivan", "old"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	for _, target := range []string{"ivan", "ghost"} {
		if err := uc.ResetPassword(ctx, caller.ID, target, "new"); !errors.Is(err, domainErrors.ErrForbidden) {
			t.Fatalf("expected forbidden for %q, got %v", target, err)
		}
	}
	if len(repo.Saved) != 0 {
		t.Fatalf("expected no saves, got %+v", repo.Saved)
	}
}
