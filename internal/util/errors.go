// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrInvalidPayload     = errors.New("invalid items payload")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotPayable    = errors.New("order cannot be paid")
	ErrDuplicateEntry     = errors.New("duplicate entry")
)

// IsError reports whether err wraps target, per errors.Is semantics.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
