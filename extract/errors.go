package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when a source cannot be opened or read.
	ErrSourceNotFound = errors.New("extract: source not found")

	// ErrMalformedRecord is returned when an excited-state line cannot be
	// parsed.
	ErrMalformedRecord = errors.New("extract: malformed record")
)

// RecordError describes a malformed excited-state line.
type RecordError struct {
	Source string // file name or caller supplied label
	Line   int    // 1-based line number
	Text   string // the offending line, without line terminator
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %s: %q", e.Source, e.Line, ErrMalformedRecord, e.Reason, e.Text)
}

// Unwrap makes errors.Is(err, ErrMalformedRecord) hold.
func (e *RecordError) Unwrap() error { return ErrMalformedRecord }
