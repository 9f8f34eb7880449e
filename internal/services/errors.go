package services

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by RemoveItem for an index outside the cart.
var ErrOutOfRange = errors.New("index out of range")

// ValidationError reports a missing required customer field at checkout, or
// an item price outside the accepted range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
