package field

import "errors"

// Construction errors. These indicate caller misuse and are never
// handled internally.
var (
	// ErrMissingPredicate is returned when a field is constructed
	// without a predicate IRI.
	ErrMissingPredicate = errors.New("field predicate is required")

	// ErrMissingValue is returned when an ad hoc field is constructed
	// without a value.
	ErrMissingValue = errors.New("field value is required")
)
