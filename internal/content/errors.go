package content

import (
	"errors"
	"net/http"
)

// Failures surfaced by the service. Each maps to one HTTP status.
var (
	ErrDuplicateIdentity  = errors.New("content: email already registered")
	ErrNotFound           = errors.New("content: not found")
	ErrInvalidCredentials = errors.New("content: invalid credentials")
	ErrBadRequest         = errors.New("content: bad request")
	ErrServer             = errors.New("content: server error")
)

// Messages sent in {"error": ...} bodies.
const (
	msgDuplicate     = "Email already exists"
	msgUserNotFound  = "User not found"
	msgBadPassword   = "Invalid password"
	msgInvalidToken  = "Invalid token"
	msgServer        = "Server error"
	msgBadRequest    = "Invalid request"
	msgHeroNotFound  = "Hero not found"
	msgMissingFields = "Email and password are required"
)

// statusFor returns the HTTP status for a service error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrDuplicateIdentity), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// classify maps a response status and message back to a sentinel.
func classify(status int, msg string) error {
	switch {
	case status == http.StatusBadRequest && msg == msgDuplicate:
		return ErrDuplicateIdentity
	case status == http.StatusBadRequest:
		return ErrBadRequest
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusUnauthorized:
		return ErrInvalidCredentials
	default:
		return ErrServer
	}
}

// APIError is returned by Client for non-2xx responses.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}
