package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidFund        = errors.New("invalid fund record")
	ErrConflict           = errors.New("concurrent modification")
	ErrForbidden          = errors.New("forbidden")
)
