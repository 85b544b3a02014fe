package unit

import "errors"

// Parse and registration errors. Errors returned by this package wrap one
// of these sentinels; use errors.Is to classify. Dimension mismatches wrap
// dimension.ErrMismatch.
var (
	ErrSyntax          = errors.New("malformed unit expression")
	ErrUnknownSymbol   = errors.New("unknown unit symbol")
	ErrAmbiguousSymbol = errors.New("ambiguous unit symbol")
	ErrDuplicateSymbol = errors.New("duplicate symbol registration")
	ErrEmptySymbol     = errors.New("empty symbol registration")
)
