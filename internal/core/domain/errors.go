package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidConfig indicates malformed configuration.
	// Configuration failures are fatal to initialisation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownIncrement indicates an unrecognised increment level name.
	ErrUnknownIncrement = errors.New("unknown increment level")

	// ErrInvalidPattern indicates an issue-id pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid issue pattern")
)
