package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=BridgeItemServiceWrapper

// BridgeItemService is the plaintext facade over the encrypted bridge item
// store: items are encrypted on write and decrypted on read. Calls for the
// same user are not serialized; each one is an independent
// read-modify-write.
type BridgeItemService interface {
	// InsertItems encrypts items and upserts them for userID.
	InsertItems(ctx context.Context, items []models.BridgeItem, userID string) error
	// ReplaceAllItems encrypts items and atomically replaces the user's set.
	ReplaceAllItems(ctx context.Context, items []models.BridgeItem, userID string) error
	// DeleteAllForUserID removes every bridge item of userID.
	DeleteAllForUserID(ctx context.Context, userID string) error
	// FetchAllForUserID returns the user's decrypted items.
	FetchAllForUserID(ctx context.Context, userID string) ([]models.BridgeItem, error)

	// AvailableItems is FetchAllForUserID degraded for display: a missing key
	// or failed decryption yields no items instead of an error.
	AvailableItems(ctx context.Context, userID string) []models.BridgeItem
	// ItemsStream emits decrypted snapshots of the user's items. A snapshot
	// that cannot be decrypted is emitted as an empty list.
	ItemsStream(ctx context.Context, userID string) (<-chan []models.BridgeItem, error)

	// EnsureKey generates and stores the shared key if none exists yet.
	EnsureKey(ctx context.Context) error
	// ResetKey deletes the shared key. Stored ciphertext is left as is.
	ResetKey(ctx context.Context) error
}

// BridgeItemServiceWrapper decorates a BridgeItemService with additional
// behavior such as validation.
type BridgeItemServiceWrapper interface {
	Wrap(BridgeItemService) BridgeItemService
}

// SyncSource supplies the canonical data set of a user, typically from the
// remote sync client.
type SyncSource interface {
	Fetch(ctx context.Context, userID string) (models.SyncData, error)
}

// SyncService applies the canonical data set to the local store.
type SyncService interface {
	// FullSync fetches the user's data from the source and replaces every
	// entity kind with it.
	FullSync(ctx context.Context, userID string) error
}

// SyncJob runs FullSync periodically in the background.
type SyncJob interface {
	Start(ctx context.Context, userID string, interval time.Duration)
	Stop()
}
