package units

import "errors"

// ErrDivisionByZero is returned when a zero energy or wavelength is converted.
var ErrDivisionByZero = errors.New("units: division by zero")
