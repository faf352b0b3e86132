package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/polkiloo/fundvault/internal/pkg/auth"
)

// passwordReader reads a secret from in, hiding input when in is a terminal.
var passwordReader = func(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		return string(b), err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// NewAuthCmd groups credential utilities for operators.
func NewAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication utilities",
	}
	cmd.AddCommand(NewHashPasswordCmd(), NewIssueTokenCmd())
	return cmd
}

// NewHashPasswordCmd prints a bcrypt hash of a password read from stdin.
func NewHashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Generate bcrypt hash for a password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), "Enter password: ")
			password, err := passwordReader(cmd.InOrStdin())
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			if password == "" {
				return errors.New("password cannot be empty")
			}

			hash, err := auth.NewBcryptHasher(cost).Hash(password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", auth.DefaultCost, "bcrypt work factor")
	return cmd
}

// NewIssueTokenCmd signs a bearer token for an existing user id.
func NewIssueTokenCmd() *cobra.Command {
	var (
		userID   string
		secret   string
		strategy string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Sign a bearer token for a user id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := uuid.Parse(userID); err != nil {
				return fmt.Errorf("invalid user id %q: %w", userID, err)
			}
			if secret == "" {
				secret = os.Getenv("JWT_SECRET")
			}
			if secret == "" {
				return errors.New("secret is required (--secret or JWT_SECRET)")
			}
			name := strings.ToLower(strings.TrimSpace(strategy))
			if name != "jwt" && name != "hmac" {
				return fmt.Errorf("unsupported token strategy %q", strategy)
			}

			token, err := auth.NewStrategy(name, secret, auth.Options{TTL: ttl}).IssueToken(userID)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "user id to embed in the token")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (defaults to JWT_SECRET)")
	cmd.Flags().StringVar(&strategy, "strategy", "jwt", "token strategy: jwt or hmac")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime; 0 means no expiry for jwt and the 24h default for hmac")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}
