// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/keystore"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/mock"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/models"
)

func TestBridgeItemService_InsertAndFetch(t *testing.T) {
	ctx := context.Background()
	svc, stores, _ := newTestBridgeService(t)
	require.NoError(t, svc.EnsureKey(ctx))

	items := bridgeFixtures()
	require.NoError(t, svc.InsertItems(ctx, items, "u1"))

	got, err := svc.FetchAllForUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, items, got)

	// the store only ever sees ciphertext for sensitive fields
	stored, err := stores.BridgeItems.FetchAll(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stored, len(items))
	for i := range items {
		assert.Equal(t, items[i].Name, stored[i].Name)
		if items[i].Username != nil {
			assert.NotEqual(t, *items[i].Username, *stored[i].Username)
		} else {
			assert.Nil(t, stored[i].Username)
		}
	}
}

func TestBridgeItemService_ReplaceAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestBridgeService(t)
	require.NoError(t, svc.EnsureKey(ctx))

	require.NoError(t, svc.InsertItems(ctx, bridgeFixtures(), "u1"))
	require.NoError(t, svc.InsertItems(ctx, bridgeFixtures()[:2], "u2"))

	replacement := bridgeFixtures()[2:]
	require.NoError(t, svc.ReplaceAllItems(ctx, replacement, "u1"))

	got, err := svc.FetchAllForUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	require.NoError(t, svc.DeleteAllForUserID(ctx, "u1"))

	got, err = svc.FetchAllForUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)

	other, err := svc.FetchAllForUserID(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, other, 2)
}

func TestBridgeItemService_KeyMissing(t *testing.T) {
	ctx := context.Background()
	svc, stores, _ := newTestBridgeService(t)

	err := svc.InsertItems(ctx, bridgeFixtures(), "u1")
	require.ErrorIs(t, err, crypto.ErrKeyNotFound)

	stored, err := stores.BridgeItems.FetchAll(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, stored, "nothing is written when encryption fails")

	_, err = svc.FetchAllForUserID(ctx, "u1")
	require.ErrorIs(t, err, crypto.ErrKeyNotFound)

	assert.Equal(t, []models.BridgeItem{}, svc.AvailableItems(ctx, "u1"))
}

func TestBridgeItemService_ResetKeyDegradesToNoItems(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestBridgeService(t)
	require.NoError(t, svc.EnsureKey(ctx))
	require.NoError(t, svc.InsertItems(ctx, bridgeFixtures(), "u1"))

	require.NoError(t, svc.ResetKey(ctx))

	_, err := svc.FetchAllForUserID(ctx, "u1")
	require.ErrorIs(t, err, crypto.ErrKeyNotFound)
	assert.Empty(t, svc.AvailableItems(ctx, "u1"))

	// a new key cannot read the old ciphertext
	require.NoError(t, svc.EnsureKey(ctx))

	_, err = svc.FetchAllForUserID(ctx, "u1")
	require.ErrorIs(t, err, crypto.ErrDecryption)
	assert.Empty(t, svc.AvailableItems(ctx, "u1"))

	// re-syncing under the new key restores the feature
	require.NoError(t, svc.ReplaceAllItems(ctx, bridgeFixtures(), "u1"))
	assert.Equal(t, bridgeFixtures(), svc.AvailableItems(ctx, "u1"))
}

func TestBridgeItemService_ItemsStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, _, keys := newTestBridgeService(t)
	require.NoError(t, svc.EnsureKey(ctx))

	ch, err := svc.ItemsStream(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, next(t, ch))

	items := bridgeFixtures()
	require.NoError(t, svc.ReplaceAllItems(ctx, items, "u1"))
	assert.Equal(t, items, next(t, ch))

	// rotate the key behind the service's back: the next snapshot cannot be
	// decrypted and is reported as empty rather than as ciphertext
	rotated, err := keys.GenerateKeyData()
	require.NoError(t, err)
	require.NoError(t, keys.SetKey(ctx, testKeyName, rotated))

	require.NoError(t, svc.InsertItems(ctx, []models.BridgeItem{{ID: "5", Name: "New", Username: strPtr("n")}}, "u1"))
	assert.Equal(t, []models.BridgeItem{}, next(t, ch))

	cancel()
	for range ch {
	}
}

func TestBridgeItemService_ItemsStream_FollowsKeyChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, _, keys := newTestBridgeService(t)
	require.NoError(t, svc.EnsureKey(ctx))
	saved, err := keys.GetKey(ctx, testKeyName)
	require.NoError(t, err)

	items := bridgeFixtures()
	require.NoError(t, svc.ReplaceAllItems(ctx, items, "u1"))

	ch, err := svc.ItemsStream(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, items, next(t, ch))

	// no store write happens here, the stream reacts to the key alone
	require.NoError(t, svc.ResetKey(ctx))
	assert.Equal(t, []models.BridgeItem{}, next(t, ch))

	require.NoError(t, keys.SetKey(ctx, testKeyName, saved))
	require.NoError(t, svc.EnsureKey(ctx))
	assert.Equal(t, items, next(t, ch))

	// a fresh key cannot read the stored items
	require.NoError(t, svc.ResetKey(ctx))
	assert.Equal(t, []models.BridgeItem{}, next(t, ch))
	require.NoError(t, svc.EnsureKey(ctx))

	// the unreadable snapshot is not emitted twice, the next emission is the
	// re-synced data
	require.NoError(t, svc.ReplaceAllItems(ctx, items, "u1"))
	assert.Equal(t, items, next(t, ch))

	cancel()
	for range ch {
	}
}

func TestBridgeItemService_EnsureKey(t *testing.T) {
	ctx := context.Background()
	svc, _, keys := newTestBridgeService(t)

	require.NoError(t, svc.EnsureKey(ctx))
	first, err := keys.GetKey(ctx, testKeyName)
	require.NoError(t, err)
	assert.Len(t, first, keystore.KeySize)

	require.NoError(t, svc.EnsureKey(ctx))
	second, err := keys.GetKey(ctx, testKeyName)
	require.NoError(t, err)
	assert.Equal(t, first, second, "an existing key is never replaced")
}

func TestBridgeItemService_EnsureKey_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	keys := mock.NewMockSharedKeyRepository(ctrl)
	cryptoSvc := mock.NewMockCryptographyService(ctrl)
	svc := NewBridgeItemService(newTestStores(t).BridgeItems, cryptoSvc, keys, testKeyName, logger.Nop())

	locked := errors.New("credential store locked")
	keys.EXPECT().GetKey(ctx, testKeyName).Return(nil, locked)
	require.ErrorIs(t, svc.EnsureKey(ctx), locked)

	keys.EXPECT().GetKey(ctx, testKeyName).Return(nil, keystore.ErrKeyNotFound)
	keys.EXPECT().GenerateKeyData().Return(make([]byte, keystore.KeySize), nil)
	keys.EXPECT().SetKey(ctx, testKeyName, gomock.Any()).Return(locked)
	require.ErrorIs(t, svc.EnsureKey(ctx), locked)

	keys.EXPECT().DeleteKey(ctx, testKeyName).Return(locked)
	require.ErrorIs(t, svc.ResetKey(ctx), locked)
}

func TestBridgeItemService_CryptoFailureLeavesStoreUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	stores := newTestStores(t)
	cryptoSvc := mock.NewMockCryptographyService(ctrl)
	svc := NewBridgeItemService(stores.BridgeItems, cryptoSvc, keystore.NewMemoryRepository(), testKeyName, logger.Nop())

	previous := []models.BridgeItem{{ID: "old", Name: "Old"}}
	require.NoError(t, stores.BridgeItems.ReplaceAll(ctx, previous, "u1"))

	cryptoSvc.EXPECT().Encrypt(ctx, bridgeFixtures()).Return(nil, crypto.ErrKeyNotFound)
	err := svc.ReplaceAllItems(ctx, bridgeFixtures(), "u1")
	require.ErrorIs(t, err, crypto.ErrKeyNotFound)

	stored, err := stores.BridgeItems.FetchAll(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, previous, stored)
}

func TestBridgeItemService_StoreFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	stores := newTestStores(t)
	cryptoSvc := mock.NewMockCryptographyService(ctrl)
	svc := NewBridgeItemService(stores.BridgeItems, cryptoSvc, keystore.NewMemoryRepository(), testKeyName, logger.Nop())

	require.NoError(t, stores.Close())

	cryptoSvc.EXPECT().Encrypt(ctx, gomock.Any()).Return(bridgeFixtures(), nil)
	err := svc.InsertItems(ctx, bridgeFixtures(), "u1")
	require.ErrorIs(t, err, store.ErrStoreClosed)

	_, err = svc.FetchAllForUserID(ctx, "u1")
	require.ErrorIs(t, err, store.ErrStoreClosed)

	_, err = svc.ItemsStream(ctx, "u1")
	require.ErrorIs(t, err, store.ErrStoreClosed)
}
