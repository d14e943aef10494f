package urlmap

import "errors"

var (
	// ErrNoMatch is returned when no registered pattern matches a path.
	ErrNoMatch = errors.New("no pattern matches path")
	// ErrNoReverseMatch is returned when a route name is unknown or required
	// params are missing during reverse resolution.
	ErrNoReverseMatch = errors.New("no reverse match")
	// ErrDuplicateName is returned when a route name is registered twice.
	ErrDuplicateName = errors.New("route name already registered")
	// ErrInvalidPattern is returned for malformed patterns.
	ErrInvalidPattern = errors.New("invalid route pattern")
)
