package specfile

import "errors"

var (
	errNilCurve    = errors.New("specfile: nil curve")
	errUnknownMode = errors.New("specfile: unknown output mode")
)
