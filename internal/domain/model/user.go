package model

import "time"

// User represents a registered account together with its saved funds.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	SavedFunds   []Fund
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
