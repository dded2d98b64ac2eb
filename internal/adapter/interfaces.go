// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the sources the sync job pulls a user's canonical
// data set from.
//
// Two implementations are shipped: an HTTP/REST source backed by resty
// ([NewHTTPSyncSource]) and a JSON file source ([NewFileSyncSource]) used for
// offline setups and fixtures.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the
// transport (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// SyncSource fetches the canonical data set of a single user. Slices that
// are absent from the response stay nil so the sync service leaves the
// matching kind untouched; present but empty slices clear it.
type SyncSource interface {
	// Fetch returns the data set for userID. Returns [ErrEmptyUserID] when
	// userID is empty and [ErrNotFound] when the source has nothing for
	// the user.
	Fetch(ctx context.Context, userID string) (models.SyncData, error)
}

// NewSyncSource builds the source selected by cfg: the HTTP source when
// cfg.SourceURL is set, the file source when cfg.SourceFile is set. It
// returns a nil SyncSource and no error when neither is configured.
func NewSyncSource(cfg config.Sync, logger *logger.Logger) (SyncSource, error) {
	switch {
	case cfg.SourceURL != "":
		return NewHTTPSyncSource(cfg, logger)
	case cfg.SourceFile != "":
		return NewFileSyncSource(cfg.SourceFile, logger), nil
	default:
		return nil, nil
	}
}
