package store

import (
	"context"
)

// EntityStore is the owner-scoped data store of one entity kind. Every
// operation is confined to the records of userID; none of them can read or
// change another user's records.
type EntityStore[T any] interface {
	// DeleteAllForUser removes every record owned by userID.
	DeleteAllForUser(ctx context.Context, userID string) error
	// DeleteByID removes at most one record. Deleting an absent id is not
	// an error.
	DeleteByID(ctx context.Context, id, userID string) error
	// FetchAll returns the user's entities in insertion order.
	FetchAll(ctx context.Context, userID string) ([]T, error)
	// FetchByID reports false when no record matches both id and userID.
	FetchByID(ctx context.Context, id, userID string) (T, bool, error)
	// Upsert inserts the entity or replaces the stored one with the same id.
	Upsert(ctx context.Context, entity T, userID string) error
	// UpsertAll upserts entities in one transaction.
	UpsertAll(ctx context.Context, entities []T, userID string) error
	// ReplaceAll atomically substitutes the user's entire set with entities.
	ReplaceAll(ctx context.Context, entities []T, userID string) error
	// ChangeStream emits the user's current entities and a new snapshot
	// after every committed change that may affect them. The channel is
	// closed when ctx is cancelled or the store is closed.
	ChangeStream(ctx context.Context, userID string) (<-chan []T, error)
}
