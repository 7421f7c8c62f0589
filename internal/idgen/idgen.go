package idgen

import "github.com/google/uuid"

// NewFunc returns a new unique identifier; override in tests.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new unique identifier.
func New() string { return NewFunc() }
