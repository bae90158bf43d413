package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("user already exists with this email")
	// ErrTaskNotFound is returned when a task is absent or outside the
	// caller's visibility scope. The two cases are intentionally conflated.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUserNotFound is returned when a user row is absent or out of scope.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("access denied")
	// ErrSelfDelete is returned when a caller attempts to delete their own account.
	ErrSelfDelete = errors.New("cannot delete your own account")
	// ErrNoFields is returned when an update carries no recognized field.
	ErrNoFields = errors.New("no fields to update")
)

// Envelope is the top-level response shape shared by every endpoint:
// {success, message?, data?} on success, {success: false, message, errors?}
// on failure.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// ValidationError carries the full list of field rule violations for a
// payload. Validators collect every violation rather than stopping at the
// first one.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// NewValidationError wraps a non-empty violation list.
func NewValidationError(errs []string) *ValidationError {
	return &ValidationError{Errors: errs}
}

// HTTPStatus maps a domain error to the response status code. Unrecognized
// errors are storage or programming faults and map to 500; their details are
// logged, never sent to the caller.
func HTTPStatus(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrSelfDelete), errors.Is(err, ErrNoFields):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
