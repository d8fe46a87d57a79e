package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNoSession     = errors.New("no active session, login is required")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrEmptyReason   = errors.New("a reason is required")
	ErrOrderNotFound = errors.New("order not found")
)

// NetworkError marks transport failures where no response reached the client.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("no response from server: %s", e.Err.Error())
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError carries a non-2xx response status and raw body.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned status=%d body=%s", e.StatusCode, e.Body)
}

// ValidationError blocks an action before any network call is made.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Err.Error())
}

func (e *ValidationError) Unwrap() error { return e.Err }
