package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/keystore"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/models"
)

const testKeyName = "com.example.passbridge.sharedKey"

func strPtr(s string) *string { return &s }

func newTestStores(t *testing.T) *store.Stores {
	t.Helper()

	m := store.Open(context.Background(), config.Storage{Type: config.StorageTypeMemory}, logger.Nop(), nil)
	require.NoError(t, m.Err())
	t.Cleanup(func() { _ = m.Close() })

	return store.NewStores(m)
}

// newTestBridgeService wires a bridge item service over an in-memory store
// and key repository.
func newTestBridgeService(t *testing.T) (BridgeItemService, *store.Stores, keystore.SharedKeyRepository) {
	t.Helper()

	stores := newTestStores(t)
	keys := keystore.NewMemoryRepository()
	cryptoSvc, err := crypto.NewCryptographyService(keys, testKeyName, config.AlgorithmXChaCha20Poly1305, logger.Nop())
	require.NoError(t, err)

	return NewBridgeItemService(stores.BridgeItems, cryptoSvc, keys, testKeyName, logger.Nop()), stores, keys
}

func bridgeFixtures() []models.BridgeItem {
	return []models.BridgeItem{
		{ID: "1", Name: "GitHub", Username: strPtr("octocat"), TOTPKey: strPtr("JBSWY3DPEHPK3PXP"), Favorite: true},
		{ID: "2", Name: "Mail", Username: strPtr("me@example.com")},
		{ID: "3", Name: "Bank", TOTPKey: strPtr("GEZDGNBVGY3TQOJQ")},
		{ID: "4", Name: "Shop", Username: strPtr("buyer"), TOTPKey: strPtr("MFRGGZDFMZTWQ2LK")},
	}
}

func next[T any](t *testing.T, ch <-chan []T) []T {
	t.Helper()

	select {
	case items, ok := <-ch:
		require.True(t, ok, "stream closed unexpectedly")
		return items
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for stream emission")
		return nil
	}
}
