package dto

const (
	MessageRegistered    = "Registered"
	MessageSaved         = "Saved"
	MessageRemoved       = "Removed"
	MessagePasswordReset = "Password reset successfully"

	ErrInvalidRequest     = "Invalid request"
	ErrInvalidCredentials = "Invalid credentials"
	ErrUnauthorized       = "Unauthorized"
	ErrForbidden          = "Forbidden"
	ErrUserNotFound       = "User not found"
	ErrUserExists         = "User already exists"
	ErrConflict           = "Conflicting update, retry"
	ErrServer             = "Server error"
)

// MessageResponse is the body of successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status string `json:"status"`
}
