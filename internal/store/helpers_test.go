package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/models"
)

const streamTimeout = 5 * time.Second

func newMemoryManager(t *testing.T) *Manager {
	t.Helper()

	m := Open(context.Background(), config.Storage{Type: config.StorageTypeMemory}, logger.Nop(), func(err error) {
		t.Fatalf("unexpected open error: %v", err)
	})
	require.NoError(t, m.Err())
	t.Cleanup(func() { _ = m.Close() })

	return m
}

func collections(prefix string, n int) []models.Collection {
	items := make([]models.Collection, 0, n)
	for i := range n {
		items = append(items, models.Collection{
			ID:             fmt.Sprintf("%s-%d", prefix, i),
			OrganizationID: "org-1",
			Name:           fmt.Sprintf("Collection %s %d", prefix, i),
			ReadOnly:       i%2 == 0,
		})
	}
	return items
}

func next[T any](t *testing.T, ch <-chan []T) []T {
	t.Helper()

	select {
	case items, ok := <-ch:
		require.True(t, ok, "stream closed unexpectedly")
		return items
	case <-time.After(streamTimeout):
		t.Fatal("timed out waiting for stream emission")
		return nil
	}
}

func requireQuiet[T any](t *testing.T, ch <-chan []T, d time.Duration) {
	t.Helper()

	select {
	case items, ok := <-ch:
		if ok {
			t.Fatalf("unexpected stream emission: %v", items)
		}
	case <-time.After(d):
	}
}

func requireClosed[T any](t *testing.T, ch <-chan []T) {
	t.Helper()

	deadline := time.After(streamTimeout)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream was not closed")
		}
	}
}
