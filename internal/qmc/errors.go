package qmc

import "errors"

var (
	// ErrInvalidInput is returned when the variable count or the minterm
	// list violates the minimizer's preconditions.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTermLimit is returned when a generation round would hold more terms
	// than Config.MaxTerms allows.
	ErrTermLimit = errors.New("term limit exceeded")

	// ErrCoverageInvariantViolated is returned when the selected cover does
	// not reproduce the input function. It indicates an internal bug.
	ErrCoverageInvariantViolated = errors.New("coverage invariant violated")
)
