// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/keystore"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/models"
)

type bridgeItemService struct {
	items   store.EntityStore[models.BridgeItem]
	crypto  crypto.CryptographyService
	keys    keystore.SharedKeyRepository
	keyName string

	// keySubs wake open item streams when the shared key is generated or
	// deleted.
	keyMu   sync.Mutex
	keySubs map[chan struct{}]struct{}

	logger *logger.Logger
}

// NewBridgeItemService returns a [BridgeItemService] persisting to items and
// protecting sensitive fields with cryptoService. keys and keyName locate
// the shared key for EnsureKey and ResetKey.
func NewBridgeItemService(
	items store.EntityStore[models.BridgeItem],
	cryptoService crypto.CryptographyService,
	keys keystore.SharedKeyRepository,
	keyName string,
	logger *logger.Logger,
) BridgeItemService {
	return &bridgeItemService{
		items:   items,
		crypto:  cryptoService,
		keys:    keys,
		keyName: keyName,
		keySubs: make(map[chan struct{}]struct{}),
		logger:  logger,
	}
}

func (b *bridgeItemService) InsertItems(ctx context.Context, items []models.BridgeItem, userID string) error {
	encrypted, err := b.crypto.Encrypt(ctx, items)
	if err != nil {
		return fmt.Errorf("encrypt bridge items: %w", err)
	}

	if err = b.items.UpsertAll(ctx, encrypted, userID); err != nil {
		return fmt.Errorf("store bridge items: %w", err)
	}
	return nil
}

func (b *bridgeItemService) ReplaceAllItems(ctx context.Context, items []models.BridgeItem, userID string) error {
	encrypted, err := b.crypto.Encrypt(ctx, items)
	if err != nil {
		return fmt.Errorf("encrypt bridge items: %w", err)
	}

	if err = b.items.ReplaceAll(ctx, encrypted, userID); err != nil {
		return fmt.Errorf("replace bridge items: %w", err)
	}
	return nil
}

func (b *bridgeItemService) DeleteAllForUserID(ctx context.Context, userID string) error {
	return b.items.DeleteAllForUser(ctx, userID)
}

func (b *bridgeItemService) FetchAllForUserID(ctx context.Context, userID string) ([]models.BridgeItem, error) {
	encrypted, err := b.items.FetchAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch bridge items: %w", err)
	}

	items, err := b.crypto.Decrypt(ctx, encrypted)
	if err != nil {
		return nil, fmt.Errorf("decrypt bridge items: %w", err)
	}
	return items, nil
}

func (b *bridgeItemService) AvailableItems(ctx context.Context, userID string) []models.BridgeItem {
	items, err := b.FetchAllForUserID(ctx, userID)
	if err != nil {
		b.logUnavailable(ctx, "bridgeItemService.AvailableItems", userID, err)
		return []models.BridgeItem{}
	}
	return items
}

// ItemsStream decrypts every snapshot of the user's items. A snapshot is
// decrypted again when EnsureKey generates a key or ResetKey deletes it, so
// a consumer degraded to no items recovers without a data change. Key
// changes made by another process are seen on the next store change or the
// next EnsureKey call.
// Consecutive identical results are emitted once.
func (b *bridgeItemService) ItemsStream(ctx context.Context, userID string) (<-chan []models.BridgeItem, error) {
	keyChanged := b.subscribeKeyChanges()

	encrypted, err := b.items.ChangeStream(ctx, userID)
	if err != nil {
		b.unsubscribeKeyChanges(keyChanged)
		return nil, fmt.Errorf("subscribe to bridge items: %w", err)
	}

	out := make(chan []models.BridgeItem)
	go func() {
		defer close(out)
		defer b.unsubscribeKeyChanges(keyChanged)

		var (
			snapshot []models.BridgeItem
			received bool
			last     []models.BridgeItem
			emitted  bool
		)

		for {
			select {
			case s, ok := <-encrypted:
				if !ok {
					return
				}
				snapshot, received = s, true
			case <-keyChanged:
				if !received {
					continue
				}
			case <-ctx.Done():
				return
			}

			items, err := b.crypto.Decrypt(ctx, snapshot)
			if err != nil {
				b.logUnavailable(ctx, "bridgeItemService.ItemsStream", userID, err)
				items = []models.BridgeItem{}
			}
			if emitted && reflect.DeepEqual(last, items) {
				continue
			}

			select {
			case out <- items:
				last, emitted = items, true
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (b *bridgeItemService) subscribeKeyChanges() chan struct{} {
	ch := make(chan struct{}, 1)
	b.keyMu.Lock()
	b.keySubs[ch] = struct{}{}
	b.keyMu.Unlock()
	return ch
}

func (b *bridgeItemService) unsubscribeKeyChanges(ch chan struct{}) {
	b.keyMu.Lock()
	delete(b.keySubs, ch)
	b.keyMu.Unlock()
}

func (b *bridgeItemService) notifyKeyChanged() {
	b.keyMu.Lock()
	defer b.keyMu.Unlock()
	for ch := range b.keySubs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (b *bridgeItemService) EnsureKey(ctx context.Context) error {
	_, err := b.keys.GetKey(ctx, b.keyName)
	if err == nil {
		// the key may have been restored out of band
		b.notifyKeyChanged()
		return nil
	}
	if !errors.Is(err, keystore.ErrKeyNotFound) {
		return fmt.Errorf("read shared key: %w", err)
	}

	key, err := b.keys.GenerateKeyData()
	if err != nil {
		return err
	}
	if err = b.keys.SetKey(ctx, b.keyName, key); err != nil {
		return fmt.Errorf("store shared key: %w", err)
	}

	b.logger.Info().Str("func", "bridgeItemService.EnsureKey").Str("key_name", b.keyName).Msg("generated shared key")
	b.notifyKeyChanged()
	return nil
}

func (b *bridgeItemService) ResetKey(ctx context.Context) error {
	if err := b.keys.DeleteKey(ctx, b.keyName); err != nil {
		return fmt.Errorf("delete shared key: %w", err)
	}

	b.logger.Info().Str("func", "bridgeItemService.ResetKey").Str("key_name", b.keyName).Msg("shared key deleted")
	b.notifyKeyChanged()
	return nil
}

func (b *bridgeItemService) logUnavailable(ctx context.Context, fn, userID string, err error) {
	event := logger.FromContext(ctx).Warn()
	if !errors.Is(err, crypto.ErrKeyNotFound) && !errors.Is(err, crypto.ErrDecryption) {
		event = logger.FromContext(ctx).Error()
	}
	event.Err(err).Str("func", fn).Str("user_id", userID).Msg("bridge items are not available")
}
