package store

import (
	"errors"
	"fmt"

	"github.com/your-org/storefront-client/internal/infrastructure/api"
)

var (
	// ErrUnauthenticated means the action needs a shopper session the client does not hold.
	ErrUnauthenticated = errors.New("please login to continue")
	// ErrInvalidQuantity means a cart quantity below 1 was requested.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrEmptyCart means checkout was attempted with nothing in the cart.
	ErrEmptyCart = errors.New("your cart is empty")
	// ErrMissingMenuItem means no menu item id was given.
	ErrMissingMenuItem = errors.New("menu item id is required")
	// ErrMissingCredentials means email or password was blank.
	ErrMissingCredentials = errors.New("please fill all the fields")
)

// RejectedError is returned when the API answered success:false
type RejectedError struct {
	Op      string
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s rejected", e.Op)
	}
	return fmt.Sprintf("%s rejected: %s", e.Op, e.Message)
}

// TransientError wraps a network, timeout, or malformed-response failure
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// resultError converts a failed API result into the store's error taxonomy.
// It returns nil for successful results.
func resultError[T any](op string, res api.Result[T]) error {
	switch res.Status {
	case api.StatusOK, api.StatusEmpty:
		return nil
	case api.StatusUnauthorized:
		return ErrUnauthenticated
	case api.StatusRejected:
		return &RejectedError{Op: op, Message: res.Message}
	default:
		err := res.Err
		if err == nil {
			err = errors.New(res.Status.String())
		}
		return &TransientError{Op: op, Err: err}
	}
}
