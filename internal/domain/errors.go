package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound   = "account not found"
	ErrMsgDuplicateUsername = "username already exists"
	ErrMsgInvalidCredential = "incorrect credential"

	// Progress errors
	ErrMsgProgressNotFound = "progress not found"

	// Catalog errors
	ErrMsgItemNotFound = "item not found"

	// Home object errors
	ErrMsgHomeObjectNotFound = "home object not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound   = errors.New(ErrMsgAccountNotFound)
	ErrDuplicateUsername = errors.New(ErrMsgDuplicateUsername)
	ErrInvalidCredential = errors.New(ErrMsgInvalidCredential)

	// Progress errors
	ErrProgressNotFound = errors.New(ErrMsgProgressNotFound)

	// Catalog errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Home object errors
	ErrHomeObjectNotFound = errors.New(ErrMsgHomeObjectNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
