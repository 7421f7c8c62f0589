package types

import (
	"errors"
	"fmt"
)

// ErrCommandNotFound is returned when a simulator does not own a command.
var ErrCommandNotFound = errors.New("command not found")

func NewCommandNotFoundError(simulator, name string) error {
	return fmt.Errorf("%w: %v does not handle %v", ErrCommandNotFound, simulator, name)
}
