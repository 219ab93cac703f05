package sampling

import "errors"

var (
	// ErrAddFailure is returned when a field expression or offset produces
	// no usable source. Points already held by the collector are untouched.
	ErrAddFailure = errors.New("sampling: add failure")

	// ErrInvalidParameter is returned when a parameter value is out of range.
	ErrInvalidParameter = errors.New("sampling: invalid parameter value")

	// ErrUnknownParameter is returned for parameter keys no collector knows.
	ErrUnknownParameter = errors.New("sampling: unknown parameter")

	// ErrUnknownCollectorType is returned by a Registry for unregistered
	// type names.
	ErrUnknownCollectorType = errors.New("sampling: unknown collector type")

	// ErrDuplicateCollectorType is returned when a type name or alias is
	// registered twice.
	ErrDuplicateCollectorType = errors.New(
		"sampling: collector type already registered")
)
