package domain

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrRecordNotFound is the sentinel repositories return when a row is absent.
// Services translate it into a status-bearing error before it reaches HTTP.
var ErrRecordNotFound = errors.New("record not found")

// Error is a typed, HTTP-status-bearing failure built at the point of
// detection. It propagates unchanged to the boundary. Err holds the
// underlying cause for logging; Message is what the caller sees.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewAuthenticationError(message ...string) *Error {
	msg := "Could not validate credentials"

	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}

	return &Error{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: msg}
}

// NewRegistrationError masks the underlying storage failure; the cause stays
// on Err for logs only.
func NewRegistrationError(err error) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: "Error registering user", Err: err}
}

func NewUserNotFoundError(userID ...uuid.UUID) *Error {
	msg := "User not found"

	if len(userID) > 0 {
		msg = fmt.Sprintf("User with id %s not found", userID[0])
	}

	return &Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: msg}
}

func NewTodoNotFoundError(todoID uuid.UUID) *Error {
	return &Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: fmt.Sprintf("Todo with id %s not found", todoID)}
}

func NewInvalidPasswordError() *Error {
	return &Error{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: "Current password is incorrect"}
}

func NewPasswordMismatchError() *Error {
	return &Error{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: "New passwords do not match"}
}

// NewTodoCreationError exposes the underlying cause verbatim. Authentication
// failures never do this; the discrepancy is deliberate and documented.
func NewTodoCreationError(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: fmt.Sprintf("Failed to create todo: %s", err),
		Err:     err,
	}
}

func NewProviderError(err error) *Error {
	return &Error{Status: http.StatusBadGateway, Code: "PROVIDER_ERROR", Message: "LLM provider request failed", Err: err}
}

// AsError unwraps err into a *Error when it carries one.
func AsError(err error) (*Error, bool) {
	var domainErr *Error

	if errors.As(err, &domainErr) {
		return domainErr, true
	}

	return nil, false
}
