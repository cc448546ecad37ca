package domain

import "errors"

// Error kinds surfaced by the calculator. Callers match them with errors.Is;
// every returned error wraps one of these with the offending values.
var (
	// ErrInvalidParameter marks out-of-range simulation inputs (step, rates, option fields).
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrMalformedInput marks a benefit table source missing columns, rows or parseable values.
	ErrMalformedInput = errors.New("malformed input")
	// ErrLookupFailure marks a requested claim age that is absent from the benefit table.
	ErrLookupFailure = errors.New("lookup failure")
)
