package services

import "errors"

// Sentinel errors returned by services. Controllers map them to status codes
// with errors.Is; anything else is an internal failure.
var (
	ErrEmailTaken         = errors.New("User already exists with this email.")
	ErrInvalidCredentials = errors.New("Invalid email or password.")
	ErrUserNotFound       = errors.New("User not found. Please log in again.")
	ErrMenuItemNotFound   = errors.New("Food item not found in the menu.")
	ErrItemNotFound       = errors.New("Item not found in cart.")
	ErrCartEmpty          = errors.New("No items found in the cart for this user.")
	ErrNotOwner           = errors.New("cart item belongs to another user")
)

// ValidationError carries a client-facing message for malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }
