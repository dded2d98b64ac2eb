package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown storage type or empty group id).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidKeyConfigs indicates invalid shared key repository settings.
	ErrInvalidKeyConfigs = errors.New("invalid key configuration")
	// ErrInvalidCryptoConfigs indicates an unsupported cipher algorithm.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidSyncConfigs indicates a negative sync interval.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
