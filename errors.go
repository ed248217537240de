package seqproj

import "errors"

// Validation failures. Constructors wrap these with the offending value, so
// callers can test with errors.Is.
var (
	ErrInvalidEnum      = errors.New("invalid enum value")
	ErrEmpty            = errors.New("required value is empty")
	ErrLayoutMismatch   = errors.New("file count does not match layout")
	ErrNotPositive      = errors.New("value must be a positive integer")
	ErrEmptyDescription = errors.New("description must be non-empty when specified")
	ErrDuplicateRun     = errors.New("duplicate sequencing run index")
	ErrMixedLayout      = errors.New("sequencing runs have different layouts")
)
