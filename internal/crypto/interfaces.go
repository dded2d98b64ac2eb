package crypto

import (
	"context"

	"github.com/MKhiriev/go-pass-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cryptography_service_mock.go -package=mock

// CryptographyService protects the sensitive fields of bridge items with
// the shared key. Structural fields (id, name, favorite) pass through
// unchanged so the store can index and list them.
//
// Both operations work on the whole batch: they either transform every item
// or fail without returning any of them. The service holds no per-call state
// and is safe for concurrent use.
type CryptographyService interface {
	// Encrypt replaces every non-nil sensitive field with self-describing
	// ciphertext. Fails with [ErrKeyNotFound] when no shared key exists.
	Encrypt(ctx context.Context, items []models.BridgeItem) ([]models.BridgeItem, error)

	// Decrypt reverses Encrypt. Fails with [ErrKeyNotFound] when no shared
	// key exists and with an error matching [ErrDecryption] when any field
	// cannot be authenticated under the current key.
	Decrypt(ctx context.Context, items []models.BridgeItem) ([]models.BridgeItem, error)
}
