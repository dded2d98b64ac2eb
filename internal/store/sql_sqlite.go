package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/utils"
	"github.com/MKhiriev/go-pass-bridge/migrations"
)

const defaultBusyTimeout = 5 * time.Second

// ContainerPath resolves the store file inside the shared group container
// described by cfg: <SharedDir>/<GroupID>/<FileName>. When SharedDir is
// empty the user configuration directory is used as the root.
func ContainerPath(cfg config.Storage) (string, error) {
	root := cfg.SharedDir
	if root == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve shared container root: %w", err)
		}
		root = filepath.Join(dir, "SharedGroups")
	}
	if cfg.GroupID == "" {
		return "", fmt.Errorf("empty group id")
	}
	return filepath.Join(root, cfg.GroupID, cfg.FileName), nil
}

// connectSQLiteFile opens the writer and reader handles of a file-backed
// store in the shared group container. The writer is limited to a single
// connection and takes the write lock when a transaction begins; the reader
// pool serves queries and change streams.
func connectSQLiteFile(ctx context.Context, cfg config.Storage, log *logger.Logger) (reader, writer *sql.DB, path string, err error) {
	path, err = ContainerPath(cfg)
	if err != nil {
		return nil, nil, "", err
	}

	// the group container must be reachable; creating it is the first
	// access to the shared location
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Err(err).Str("func", "connectSQLiteFile").Str("path", path).Msg("shared container is not reachable")
		return nil, nil, "", fmt.Errorf("create shared container: %w", err)
	}

	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = defaultBusyTimeout
	}

	writer, err = openSQLite(ctx, fileDSN(path, busy, true))
	if err != nil {
		log.Err(err).Str("func", "connectSQLiteFile").Str("path", path).Msg("error connecting writer")
		return nil, nil, "", err
	}
	writer.SetMaxOpenConns(1)

	if err = migrations.Migrate(writer); err != nil {
		_ = writer.Close()
		return nil, nil, "", err
	}

	reader, err = openSQLite(ctx, fileDSN(path, busy, false))
	if err != nil {
		_ = writer.Close()
		log.Err(err).Str("func", "connectSQLiteFile").Str("path", path).Msg("error connecting reader")
		return nil, nil, "", err
	}
	reader.SetMaxOpenConns(4)

	log.Debug().Str("func", "connectSQLiteFile").Str("path", path).Msg("connected to shared store successfully")
	return reader, writer, path, nil
}

// connectSQLiteMemory opens a private in-memory store. Reader and writer
// share one connection so the database lives as long as the handle does.
func connectSQLiteMemory(ctx context.Context, log *logger.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", utils.NewUUIDGenerator().Generate())

	db, err := openSQLite(ctx, dsn)
	if err != nil {
		log.Err(err).Str("func", "connectSQLiteMemory").Msg("error connecting in-memory store")
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err = migrations.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func openSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}

	return conn, nil
}

func fileDSN(path string, busy time.Duration, writer bool) string {
	params := url.Values{}
	params.Set("_busy_timeout", fmt.Sprintf("%d", busy.Milliseconds()))
	params.Set("_foreign_keys", "on")
	// WAL is persistent in the file, so the writer switching it on once is
	// enough for every later connection of any process.
	if writer {
		params.Set("_journal_mode", "WAL")
		params.Set("_txlock", "immediate")
	}
	return "file:" + path + "?" + params.Encode()
}
