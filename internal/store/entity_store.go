// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-pass-bridge/internal/logger"
)

// record is the persisted form of one entity: its id and encoded payload.
// The kind and owner columns come from the statement scope.
type record struct {
	id      string
	payload []byte
}

type entityStore[T any] struct {
	manager *Manager
	kind    Kind[T]
}

// NewEntityStore returns the data store of kind over the shared manager.
func NewEntityStore[T any](manager *Manager, kind Kind[T]) EntityStore[T] {
	return &entityStore[T]{
		manager: manager,
		kind:    kind,
	}
}

func (s *entityStore[T]) change(userID string) Change {
	return Change{Kind: s.kind.Name, UserID: userID}
}

func (s *entityStore[T]) DeleteAllForUser(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	return s.manager.Write(ctx, s.change(userID), func(ctx context.Context, tx *sql.Tx) error {
		return execInTx(ctx, tx, deleteRecordsQuery(s.kind.Name, userID))
	})
}

func (s *entityStore[T]) DeleteByID(ctx context.Context, id, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	return s.manager.Write(ctx, s.change(userID), func(ctx context.Context, tx *sql.Tx) error {
		return execInTx(ctx, tx, deleteRecordQuery(s.kind.Name, userID, id))
	})
}

func (s *entityStore[T]) FetchAll(ctx context.Context, userID string) ([]T, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	return s.queryAll(ctx, userID)
}

func (s *entityStore[T]) FetchByID(ctx context.Context, id, userID string) (T, bool, error) {
	var zero T
	if userID == "" {
		return zero, false, ErrEmptyUserID
	}

	log := logger.FromContext(ctx)

	query, args, err := selectRecordQuery(s.kind.Name, userID, id).ToSql()
	if err != nil {
		return zero, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := s.query(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityStore.FetchByID").
			Str("kind", s.kind.Name).
			Str("user_id", userID).
			Str("id", id).
			Msg("failed to fetch record")
		return zero, false, err
	}
	if len(items) == 0 {
		return zero, false, nil
	}

	return items[0], true, nil
}

func (s *entityStore[T]) Upsert(ctx context.Context, entity T, userID string) error {
	return s.UpsertAll(ctx, []T{entity}, userID)
}

func (s *entityStore[T]) UpsertAll(ctx context.Context, entities []T, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	records, err := s.encode(entities, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityStore.UpsertAll").
			Str("kind", s.kind.Name).
			Str("user_id", userID).
			Msg("failed to encode entities")
		return err
	}
	if len(records) == 0 {
		return nil
	}

	return s.manager.Write(ctx, s.change(userID), func(ctx context.Context, tx *sql.Tx) error {
		return upsertInTx(ctx, tx, s.kind.Name, userID, records)
	})
}

func (s *entityStore[T]) ReplaceAll(ctx context.Context, entities []T, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	records, err := s.encode(entities, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityStore.ReplaceAll").
			Str("kind", s.kind.Name).
			Str("user_id", userID).
			Msg("failed to encode entities")
		return err
	}

	return s.manager.Write(ctx, s.change(userID), func(ctx context.Context, tx *sql.Tx) error {
		return replaceInTx(ctx, tx, s.kind.Name, userID, records)
	})
}

func (s *entityStore[T]) ChangeStream(ctx context.Context, userID string) (<-chan []T, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if err := s.manager.usable(); err != nil {
		return nil, err
	}

	return stream(ctx, s.manager, s.kind.Name, userID, func(ctx context.Context) ([]T, error) {
		return s.queryAll(ctx, userID)
	}), nil
}

func (s *entityStore[T]) queryAll(ctx context.Context, userID string) ([]T, error) {
	query, args, err := selectRecordsQuery(s.kind.Name, userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := s.query(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityStore.FetchAll").
			Str("kind", s.kind.Name).
			Str("user_id", userID).
			Msg("failed to fetch records")
		return nil, err
	}

	return items, nil
}

func (s *entityStore[T]) query(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := s.manager.query(ctx, query, args...)
	if err != nil {
		if isUnusable(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var r record
		if err = rows.Scan(&r.id, &r.payload); err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrScanningRows, err)
		}

		item, err := s.kind.Decode(r.payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w (id=%s): %w", ErrPersistence, ErrDecodingPayload, r.id, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrScanningRows, err)
	}

	return items, nil
}

// encode turns entities into records owned by userID. An entity naming a
// different owner is rejected rather than filed under userID.
func (s *entityStore[T]) encode(entities []T, userID string) ([]record, error) {
	records := make([]record, 0, len(entities))
	for i, entity := range entities {
		id := s.kind.ID(entity)
		if id == "" {
			return nil, fmt.Errorf("%w: %s at index %d has an empty id", ErrInvalidEntity, s.kind.Name, i)
		}
		if s.kind.Owner != nil {
			if owner := s.kind.Owner(entity); owner != "" && owner != userID {
				return nil, fmt.Errorf("%w: %s %s belongs to user %s, not %s", ErrInvalidEntity, s.kind.Name, id, owner, userID)
			}
		}

		payload, err := s.kind.Encode(entity)
		if err != nil {
			return nil, fmt.Errorf("%w: encode %s %s: %w", ErrInvalidEntity, s.kind.Name, id, err)
		}

		records = append(records, record{id: id, payload: payload})
	}
	return records, nil
}
