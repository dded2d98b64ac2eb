// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-bridge/internal/keystore"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/models"
)

type cryptographyService struct {
	keys      keystore.SharedKeyRepository
	keyName   string
	algorithm string
	logger    *logger.Logger
}

// NewCryptographyService returns a [CryptographyService] that reads the key
// named keyName from keys on every call and encrypts with algorithm.
func NewCryptographyService(keys keystore.SharedKeyRepository, keyName, algorithm string, log *logger.Logger) (CryptographyService, error) {
	if _, err := newAEAD(algorithm, make([]byte, KeySize)); err != nil {
		return nil, fmt.Errorf("cryptography service: %w", err)
	}

	return &cryptographyService{
		keys:      keys,
		keyName:   keyName,
		algorithm: algorithm,
		logger:    log,
	}, nil
}

// sensitiveField is one encrypted field of a bridge item.
type sensitiveField struct {
	name  string
	value **string
}

func sensitiveFields(item *models.BridgeItem) []sensitiveField {
	return []sensitiveField{
		{name: "username", value: &item.Username},
		{name: "totpKey", value: &item.TOTPKey},
	}
}

// additionalData binds a ciphertext to the item and field it was written
// for, so it cannot be moved to another item or field.
func additionalData(item models.BridgeItem, field string) string {
	return "bridge_item:" + item.ID + ":" + field
}

func (c *cryptographyService) Encrypt(ctx context.Context, items []models.BridgeItem) ([]models.BridgeItem, error) {
	key, err := c.key(ctx, "cryptographyService.Encrypt")
	if err != nil {
		return nil, err
	}

	out := make([]models.BridgeItem, len(items))
	for i, item := range items {
		for _, f := range sensitiveFields(&item) {
			if *f.value == nil {
				continue
			}

			sealed, err := seal(c.algorithm, key, **f.value, additionalData(item, f.name))
			if err != nil {
				logger.FromContext(ctx).Err(err).
					Str("func", "cryptographyService.Encrypt").
					Str("item_id", item.ID).
					Str("field", f.name).
					Msg("failed to encrypt field")
				return nil, fmt.Errorf("encrypt %s of item %s: %w", f.name, item.ID, err)
			}
			*f.value = &sealed
		}
		out[i] = item
	}

	return out, nil
}

func (c *cryptographyService) Decrypt(ctx context.Context, items []models.BridgeItem) ([]models.BridgeItem, error) {
	key, err := c.key(ctx, "cryptographyService.Decrypt")
	if errors.Is(err, ErrInvalidKey) {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	if err != nil {
		return nil, err
	}

	out := make([]models.BridgeItem, len(items))
	for i, item := range items {
		for _, f := range sensitiveFields(&item) {
			if *f.value == nil {
				continue
			}

			plain, err := open(key, **f.value, additionalData(item, f.name))
			if err != nil {
				logger.FromContext(ctx).Err(err).
					Str("func", "cryptographyService.Decrypt").
					Str("item_id", item.ID).
					Str("field", f.name).
					Msg("failed to decrypt field")
				return nil, fmt.Errorf("decrypt %s of item %s: %w", f.name, item.ID, err)
			}
			*f.value = &plain
		}
		out[i] = item
	}

	return out, nil
}

// key loads the shared key once per batch, before any item is touched.
func (c *cryptographyService) key(ctx context.Context, fn string) ([]byte, error) {
	key, err := c.keys.GetKey(ctx, c.keyName)
	if errors.Is(err, keystore.ErrKeyNotFound) {
		logger.FromContext(ctx).Warn().Str("func", fn).Str("key_name", c.keyName).Msg("shared key is missing")
		return nil, fmt.Errorf("%s: %w", c.keyName, ErrKeyNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("key_name", c.keyName).Msg("failed to load shared key")
		return nil, fmt.Errorf("load shared key: %w", err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidKey, len(key))
	}

	return key, nil
}
