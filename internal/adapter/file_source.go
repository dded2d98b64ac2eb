package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/models"
)

type fileSyncSource struct {
	path   string
	logger *logger.Logger
}

// NewFileSyncSource constructs a [SyncSource] that reads a JSON document
// mapping user ids to their [models.SyncData]:
//
//	{"user-1": {"folders": [...], "bridgeItems": [...]}}
//
// The file is re-read on every Fetch so edits are picked up by the next
// sync round.
func NewFileSyncSource(path string, logger *logger.Logger) SyncSource {
	return &fileSyncSource{path: path, logger: logger}
}

// Fetch implements [SyncSource].
func (f *fileSyncSource) Fetch(ctx context.Context, userID string) (models.SyncData, error) {
	if userID == "" {
		return models.SyncData{}, ErrEmptyUserID
	}
	if err := ctx.Err(); err != nil {
		return models.SyncData{}, err
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.SyncData{}, fmt.Errorf("%w: %s", ErrNotFound, f.path)
		}
		return models.SyncData{}, fmt.Errorf("%w: %w", ErrReadingSource, err)
	}

	var users map[string]models.SyncData
	if err = json.Unmarshal(raw, &users); err != nil {
		f.logger.Err(err).Str("func", "fileSyncSource.Fetch").Str("path", f.path).Msg("malformed sync file")
		return models.SyncData{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	data, ok := users[userID]
	if !ok {
		return models.SyncData{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	return data, nil
}
