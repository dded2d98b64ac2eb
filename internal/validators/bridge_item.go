// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-bridge/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldItemID targets the item id, which must be non-empty.
	FieldItemID = "id"

	// FieldName targets the display name shown by the companion application.
	FieldName = "name"

	// FieldUniqueIDs targets a batch: no two items may share an id.
	FieldUniqueIDs = "unique_ids"
)

// BridgeItemValidator checks bridge items before they are encrypted and
// stored.
type BridgeItemValidator struct{}

// NewBridgeItemValidator returns a [Validator] for bridge items.
func NewBridgeItemValidator() Validator {
	return &BridgeItemValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.BridgeItem / *models.BridgeItem
//   - []models.BridgeItem
//
// Returns ErrUnsupportedType for anything else.
func (v *BridgeItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BridgeItem:
		return v.validateItem(ctx, value, fields...)
	case *models.BridgeItem:
		return v.validateItem(ctx, *value, fields...)
	case []models.BridgeItem:
		return v.validateBatch(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateItem validates a single item. Default fields: id, name.
func (v *BridgeItemValidator) validateItem(_ context.Context, item models.BridgeItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if item.ID == "" {
				return ErrInvalidItemID
			}
		case FieldName:
			if item.Name == "" {
				return ErrEmptyName
			}
		case FieldUniqueIDs:
			// batch-level rule
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBatch validates every item and, by default, that ids are unique.
// An empty batch is valid.
func (v *BridgeItemValidator) validateBatch(ctx context.Context, items []models.BridgeItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldName, FieldUniqueIDs}
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if err := v.validateItem(ctx, item, fields...); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}

		for _, f := range fields {
			if f != FieldUniqueIDs {
				continue
			}
			if _, ok := seen[item.ID]; ok {
				return fmt.Errorf("item %d (%s): %w", i, item.ID, ErrDuplicateItemID)
			}
			seen[item.ID] = struct{}{}
		}
	}

	return nil
}
