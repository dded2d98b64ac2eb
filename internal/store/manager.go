// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
)

// ErrorHandler receives the configuration error of a store that could not
// be opened. It is called at most once per [Open].
type ErrorHandler func(err error)

// TxFunc is a unit of work executed inside one write transaction.
type TxFunc func(ctx context.Context, tx *sql.Tx) error

// Change describes which subscriptions a committed write may affect.
// An empty UserID matches every user of the kind; an empty Kind matches
// every kind.
type Change struct {
	Kind   string
	UserID string
}

type writeJob struct {
	ctx    context.Context
	change Change
	fn     TxFunc
	result chan error
}

// Manager owns the storage engine of one process and its two execution
// contexts:
//   - a dedicated writer goroutine that runs every mutation in its own
//     transaction, one at a time, and publishes the change after commit;
//   - a reader pool that serves fetches and change-stream queries.
//
// Only plain values cross between the two: rows are decoded into domain
// models before they leave a query.
//
// A Manager is created once per process with [Open] and passed by reference
// to the entity stores built on top of it.
type Manager struct {
	reader *sql.DB
	writer *sql.DB
	path   string
	logger *logger.Logger

	jobs    chan writeJob
	hub     *hub
	watcher *externalWatcher

	openErr   error
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Open opens the store described by cfg. It never fails from the caller's
// point of view: when configuration fails (for example, the shared
// container is not reachable) the error is logged, reported once through
// onError and the returned Manager rejects every operation with
// [ErrStoreUnusable].
func Open(ctx context.Context, cfg config.Storage, log *logger.Logger, onError ErrorHandler) *Manager {
	m, err := open(ctx, cfg, log)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrConfiguration, err)
		log.Err(err).Str("func", "store.Open").Str("type", cfg.Type).Msg("failed to open persistent store")
		if onError != nil {
			onError(err)
		}
		return unusableManager(err, log)
	}
	return m
}

func open(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Manager, error) {
	switch cfg.Type {
	case config.StorageTypeMemory:
		db, err := connectSQLiteMemory(ctx, log)
		if err != nil {
			return nil, err
		}
		return newManager(db, db, "", log), nil

	case config.StorageTypeFile, "":
		reader, writer, path, err := connectSQLiteFile(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		m := newManager(reader, writer, path, log)
		if cfg.WatchExternal {
			w, err := newExternalWatcher(path, m.hub, log)
			if err != nil {
				_ = m.Close()
				return nil, err
			}
			m.watcher = w
		}
		return m, nil

	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

func newManager(reader, writer *sql.DB, path string, log *logger.Logger) *Manager {
	m := &Manager{
		reader: reader,
		writer: writer,
		path:   path,
		logger: log,
		jobs:   make(chan writeJob),
		hub:    newHub(),
		done:   make(chan struct{}),
	}

	m.wg.Add(1)
	go m.runWriter()

	return m
}

func unusableManager(err error, log *logger.Logger) *Manager {
	done := make(chan struct{})
	close(done)
	return &Manager{
		logger:  log,
		hub:     newHub(),
		openErr: err,
		done:    done,
	}
}

// Err returns the configuration error of an unusable store, or nil.
func (m *Manager) Err() error {
	return m.openErr
}

// Path returns the store file path, or "" for in-memory stores.
func (m *Manager) Path() string {
	return m.path
}

// Close stops the writer goroutine and the external watcher, ends every
// open change stream and releases the database handles. Calling Close more
// than once is safe.
func (m *Manager) Close() error {
	if m.openErr != nil {
		return nil
	}

	var err error
	m.closeOnce.Do(func() {
		close(m.done)
		m.wg.Wait()
		m.hub.close()

		if m.watcher != nil {
			if wErr := m.watcher.stop(); wErr != nil {
				m.logger.Err(wErr).Str("func", "Manager.Close").Msg("failed to stop external watcher")
			}
		}

		if m.reader != m.writer {
			if rErr := m.reader.Close(); rErr != nil {
				err = rErr
			}
		}
		if wErr := m.writer.Close(); wErr != nil {
			err = wErr
		}
	})
	return err
}

func (m *Manager) usable() error {
	if m.openErr != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnusable, m.openErr)
	}
	select {
	case <-m.done:
		return ErrStoreClosed
	default:
		return nil
	}
}

// Write runs fn in one transaction on the writer goroutine and blocks until
// it has committed or failed. If fn returns an error the transaction is
// rolled back and nothing becomes visible to readers.
//
// A cancelled ctx aborts the write only while it is still queued. Once the
// transaction has begun it runs to completion.
func (m *Manager) Write(ctx context.Context, change Change, fn TxFunc) error {
	if err := m.usable(); err != nil {
		return err
	}

	job := writeJob{
		ctx:    ctx,
		change: change,
		fn:     fn,
		result: make(chan error, 1),
	}

	select {
	case m.jobs <- job:
	case <-ctx.Done():
		return ctx.Err()
	case <-m.done:
		return ErrStoreClosed
	}

	return <-job.result
}

func (m *Manager) runWriter() {
	defer m.wg.Done()

	for {
		select {
		case <-m.done:
			return
		case job := <-m.jobs:
			job.result <- m.execute(job)
		}
	}
}

func (m *Manager) execute(job writeJob) error {
	if err := job.ctx.Err(); err != nil {
		return err
	}
	ctx := context.WithoutCancel(job.ctx)

	tx, err := m.writer.BeginTx(ctx, nil)
	if err != nil {
		m.logger.Err(err).
			Str("func", "Manager.execute").
			Str("kind", job.change.Kind).
			Str("user_id", job.change.UserID).
			Msg("failed to begin write transaction")
		return fmt.Errorf("%w: %w: %w", ErrPersistence, ErrBeginningTransaction, err)
	}

	if err = job.fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			m.logger.Err(rbErr).
				Str("func", "Manager.execute").
				Str("kind", job.change.Kind).
				Str("user_id", job.change.UserID).
				Msg("failed to roll back write transaction")
		}
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err = tx.Commit(); err != nil {
		m.logger.Err(err).
			Str("func", "Manager.execute").
			Str("kind", job.change.Kind).
			Str("user_id", job.change.UserID).
			Msg("failed to commit write transaction")
		return fmt.Errorf("%w: %w: %w", ErrPersistence, ErrCommitingTransaction, err)
	}

	m.hub.publish(job.change)
	return nil
}

// query runs a read on the reader pool.
func (m *Manager) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if err := m.usable(); err != nil {
		return nil, err
	}
	return m.reader.QueryContext(ctx, query, args...)
}
