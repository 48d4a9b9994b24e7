package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks malformed caller input. It is reported at the boundary
// and never reaches the numeric core.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputf formats a message wrapped around ErrInvalidInput.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
