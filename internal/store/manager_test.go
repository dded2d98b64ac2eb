package store

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/models"
)

func TestOpen_UnreachableSharedLocation(t *testing.T) {
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("not a directory"), 0o600))

	var reported []error
	m := Open(context.Background(), config.Storage{
		Type:      config.StorageTypeFile,
		GroupID:   "group.test",
		SharedDir: blocked,
		FileName:  "bridge.sqlite",
	}, logger.Nop(), func(err error) {
		reported = append(reported, err)
	})

	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], ErrConfiguration)
	assert.ErrorIs(t, m.Err(), ErrConfiguration)

	ctx := context.Background()
	s := NewEntityStore(m, BridgeItemKind)

	_, err := s.FetchAll(ctx, "u1")
	assert.ErrorIs(t, err, ErrStoreUnusable)

	err = s.Upsert(ctx, models.BridgeItem{ID: "b1"}, "u1")
	assert.ErrorIs(t, err, ErrStoreUnusable)

	_, err = s.ChangeStream(ctx, "u1")
	assert.ErrorIs(t, err, ErrStoreUnusable)

	assert.NoError(t, m.Close())
	assert.Len(t, reported, 1)
}

func TestOpen_UnknownStorageType(t *testing.T) {
	var reported error
	m := Open(context.Background(), config.Storage{Type: "cloud"}, logger.Nop(), func(err error) {
		reported = err
	})

	assert.ErrorIs(t, reported, ErrConfiguration)
	assert.ErrorIs(t, m.Err(), ErrConfiguration)
}

func TestOpen_NilErrorHandler(t *testing.T) {
	m := Open(context.Background(), config.Storage{Type: "cloud"}, logger.Nop(), nil)
	assert.Error(t, m.Err())
}

func TestOpen_ConfigurationFailureLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	log := logger.Nop()
	log.Logger = zerolog.New(&buf)

	var reported int
	m := Open(context.Background(), config.Storage{Type: "cloud"}, log, func(error) { reported++ })
	require.Error(t, m.Err())

	_, err := NewEntityStore(m, FolderKind).FetchAll(context.Background(), "u1")
	require.ErrorIs(t, err, ErrStoreUnusable)
	require.NoError(t, m.Close())

	assert.Equal(t, 1, reported)
	assert.Equal(t, 1, strings.Count(buf.String(), "failed to open persistent store"))
}

func TestOpen_FileStoreInGroupContainer(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{
		Type:      config.StorageTypeFile,
		GroupID:   "group.test",
		SharedDir: t.TempDir(),
		FileName:  "bridge.sqlite",
	}

	m := Open(ctx, cfg, logger.Nop(), nil)
	require.NoError(t, m.Err())
	assert.Equal(t, filepath.Join(cfg.SharedDir, "group.test", "bridge.sqlite"), m.Path())

	items := []models.BridgeItem{{ID: "b1", Name: "GitHub"}, {ID: "b2", Name: "Mail", Favorite: true}}
	require.NoError(t, NewEntityStore(m, BridgeItemKind).ReplaceAll(ctx, items, "u1"))
	require.NoError(t, m.Close())

	// a second opener of the same group reaches the same data
	reopened := Open(ctx, cfg, logger.Nop(), nil)
	require.NoError(t, reopened.Err())
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := NewEntityStore(reopened, BridgeItemKind).FetchAll(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestManager_OperationsAfterClose(t *testing.T) {
	ctx := context.Background()
	m := newMemoryManager(t)
	s := NewEntityStore(m, FolderKind)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.ErrorIs(t, s.Upsert(ctx, models.Folder{ID: "f1"}, "u1"), ErrStoreClosed)

	_, err := s.FetchAll(ctx, "u1")
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestManager_Write_CancelledBeforeStart(t *testing.T) {
	m := newMemoryManager(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := m.Write(ctx, Change{Kind: FolderKind.Name, UserID: "u1"}, func(context.Context, *sql.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestManager_Write_ConcurrentWritersAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := NewEntityStore(newMemoryManager(t), CollectionKind)

	const writers = 8
	errs := make(chan error, writers)
	for i := range writers {
		go func() {
			errs <- s.UpsertAll(ctx, collections(string(rune('a'+i)), 10), "u1")
		}()
	}
	for range writers {
		require.NoError(t, <-errs)
	}

	got, err := s.FetchAll(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got, writers*10)
}
