package domain

import "errors"

var (
	// Configuration errors: deterministic given the input, never retried.
	ErrNoAgents           = errors.New("agent set is empty")
	ErrUnknownWarehouse   = errors.New("unknown warehouse")
	ErrDuplicateWarehouse = errors.New("duplicate warehouse id")
	ErrInvalidDataset     = errors.New("invalid dataset")

	// Contract violation: simulation ran before assignment.
	ErrUnassignedPackage = errors.New("package has no assigned agent")
)

// IsConfigurationError reports whether err stems from bad input data rather
// than from a programming error or an I/O failure.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrNoAgents) ||
		errors.Is(err, ErrUnknownWarehouse) ||
		errors.Is(err, ErrDuplicateWarehouse) ||
		errors.Is(err, ErrInvalidDataset)
}
