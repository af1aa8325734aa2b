package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials covers unknown email, inactive account, and wrong
	// password alike, so a caller cannot probe which part failed
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers any token verification failure, missing claim,
	// session miss, or replay; deliberately undifferentiated
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthorized indicates the authenticated user lacks the role or
	// branch scope for this action
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmailTaken indicates the email is already registered
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidParent indicates the referenced parent category does not exist
	ErrInvalidParent = errors.New("invalid parent")

	// ErrCrossCompany indicates the referenced record belongs to another company
	ErrCrossCompany = errors.New("cross-company reference")

	// ErrCyclicTree indicates the operation would introduce a category cycle
	ErrCyclicTree = errors.New("cyclic category tree")

	// ErrDuplicate indicates the association already exists
	ErrDuplicate = errors.New("already exists")

	// ErrUnexpected indicates an unclassified downstream failure; internal
	// detail is never leaked with it
	ErrUnexpected = errors.New("unexpected error")
)
