package executor

import "errors"

var (
	// ErrRegistryRequired is returned when the dispatcher has nothing to route to.
	ErrRegistryRequired = errors.New("registry is required")
	// ErrFallbackRequired is returned when unknown names would have no handler.
	ErrFallbackRequired = errors.New("fallback simulator is required")
)
