package lineshape

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStickSet is returned when there are no sticks to broaden.
	ErrEmptyStickSet = errors.New("lineshape: empty stick set")

	// ErrInvalidParameter is returned for out-of-range fit parameters.
	ErrInvalidParameter = errors.New("lineshape: invalid parameter")
)

func invalidParam(name string, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, name, fmt.Sprintf(format, args...))
}
