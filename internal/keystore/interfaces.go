package keystore

//go:generate mockgen -source=interfaces.go -destination=../mock/keystore_mock.go -package=mock

import "context"

// SharedKeyRepository stores raw symmetric keys by name.
type SharedKeyRepository interface {
	// GetKey returns the key stored under name or [ErrKeyNotFound].
	GetKey(ctx context.Context, name string) ([]byte, error)
	// SetKey stores key under name, replacing any previous value.
	SetKey(ctx context.Context, name string, key []byte) error
	// DeleteKey removes the key. Removing an absent key is not an error.
	DeleteKey(ctx context.Context, name string) error
	// GenerateKeyData returns KeySize fresh random bytes.
	GenerateKeyData() ([]byte, error)
}
