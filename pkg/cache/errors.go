package cache

import "errors"

var (
	// ErrUnsupported is returned by [Clear] for backends that cannot drop
	// their entries, such as the null cache.
	ErrUnsupported = errors.New("operation not supported by cache backend")

	// ErrUnknownBackend is returned by [Open] for an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown cache backend")
)
