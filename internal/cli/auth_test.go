package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/fundvault/internal/pkg/auth"
)

const cliUserID = "5f0c2b8e-5d43-4c8e-9a51-3c1e0d1f2a3b"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewAuthCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestHashPassword(t *testing.T) {
	out, err := execute(t, "s3cret\n", "hash-password", "--cost", "4")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(out), []byte("s3cret")))

	cost, err := bcrypt.Cost([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 4, cost)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := execute(t, "\n", "hash-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestIssueToken(t *testing.T) {
	out, err := execute(t, "", "issue-token", "--user-id", cliUserID, "--secret", "secret")
	require.NoError(t, err)

	id, err := auth.NewJWTStrategy("secret", auth.Options{}).ParseToken(out)
	require.NoError(t, err)
	assert.Equal(t, cliUserID, id)

	out, err = execute(t, "", "issue-token", "--user-id", cliUserID, "--secret", "secret", "--strategy", "HMAC", "--ttl", "1h")
	require.NoError(t, err)
	id, err = auth.NewHMACStrategy("secret", auth.Options{}).ParseToken(out)
	require.NoError(t, err)
	assert.Equal(t, cliUserID, id)
}

func TestIssueTokenValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := execute(t, "", "issue-token", "--user-id", "not-a-uuid", "--secret", "secret")
	assert.ErrorContains(t, err, "invalid user id")

	_, err = execute(t, "", "issue-token", "--user-id", cliUserID)
	assert.ErrorContains(t, err, "secret is required")

	_, err = execute(t, "", "issue-token", "--user-id", cliUserID, "--secret", "s", "--strategy", "paseto")
	assert.ErrorContains(t, err, "unsupported token strategy")

	_, err = execute(t, "", "issue-token", "--secret", "s")
	assert.Error(t, err)
}

func TestIssueTokenReadsSecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	out, err := execute(t, "", "issue-token", "--user-id", cliUserID)
	require.NoError(t, err)
	id, err := auth.NewJWTStrategy("env-secret", auth.Options{}).ParseToken(out)
	require.NoError(t, err)
	assert.Equal(t, cliUserID, id)
}
