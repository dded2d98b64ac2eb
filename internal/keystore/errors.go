package keystore

import "errors"

var (
	// ErrKeyNotFound is returned when no key is stored under the name.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidKeyName is returned for empty names and names that would
	// escape the key directory.
	ErrInvalidKeyName = errors.New("invalid key name")

	// ErrUnknownBackend is returned by [New] for an unsupported backend.
	ErrUnknownBackend = errors.New("unknown key backend")
)
