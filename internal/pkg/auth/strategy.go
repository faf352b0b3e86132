package auth

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues bearer tokens carrying a user identifier and verifies them.
type Strategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	// TTL bounds token lifetime. Zero means the strategy default.
	TTL time.Duration
}
