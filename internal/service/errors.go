package service

import (
	"errors"

	"go-storefront/pkg/validator"
)

// Domain errors. Handlers map these to HTTP statuses at the boundary.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBannerNotFound   = errors.New("banner not found")
	ErrImageNotFound    = errors.New("image not found")
	ErrNotOwner         = errors.New("you do not own this resource")

	// The one domain-specific business error: a sale attempted against a
	// product with zero remaining stock.
	ErrInsufficientStock = errors.New("insufficient stock remaining")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrEmailTaken         = errors.New("email is already registered")
)

// ValidationError carries field-level messages for malformed requests
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(errs []*validator.ErrorResponse) error {
	return &ValidationError{Message: validator.Summarize(errs)}
}

func validationErrorf(msg string) error {
	return &ValidationError{Message: msg}
}
