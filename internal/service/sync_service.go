package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/models"
)

type syncService struct {
	source SyncSource
	stores *store.Stores
	bridge BridgeItemService
	logger *logger.Logger
}

// NewSyncService returns a [SyncService] that replaces each entity kind in
// stores with what source returns. Bridge items go through bridge so they
// are encrypted before they are stored.
func NewSyncService(source SyncSource, stores *store.Stores, bridge BridgeItemService, logger *logger.Logger) SyncService {
	return &syncService{
		source: source,
		stores: stores,
		bridge: bridge,
		logger: logger,
	}
}

// FullSync implements [SyncService]. Each kind present in the fetched data
// is replaced atomically on its own; kinds left nil by the source keep
// their local state. The first failing kind aborts the round and the
// remaining kinds keep their previous state until the next round.
func (s *syncService) FullSync(ctx context.Context, userID string) error {
	if s.source == nil {
		return ErrNoSyncSource
	}
	if userID == "" {
		return ErrNoUserID
	}

	log := logger.FromContext(ctx)

	data, err := s.source.Fetch(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "syncService.FullSync").Str("user_id", userID).Msg("failed to fetch sync data")
		return fmt.Errorf("fetch sync data: %w", err)
	}

	var settings []models.Settings
	if data.Settings != nil {
		settings = []models.Settings{*data.Settings}
	}

	steps := []struct {
		kind    string
		present bool
		replace func() error
	}{
		{store.VaultItemKind.Name, data.VaultItems != nil, func() error { return s.stores.VaultItems.ReplaceAll(ctx, data.VaultItems, userID) }},
		{store.FolderKind.Name, data.Folders != nil, func() error { return s.stores.Folders.ReplaceAll(ctx, data.Folders, userID) }},
		{store.CollectionKind.Name, data.Collections != nil, func() error { return s.stores.Collections.ReplaceAll(ctx, data.Collections, userID) }},
		{store.OrganizationKind.Name, data.Organizations != nil, func() error { return s.stores.Organizations.ReplaceAll(ctx, data.Organizations, userID) }},
		{store.PolicyKind.Name, data.Policies != nil, func() error { return s.stores.Policies.ReplaceAll(ctx, data.Policies, userID) }},
		{store.SettingsKind.Name, settings != nil, func() error { return s.stores.Settings.ReplaceAll(ctx, settings, userID) }},
		{store.BridgeItemKind.Name, data.BridgeItems != nil, func() error { return s.bridge.ReplaceAllItems(ctx, data.BridgeItems, userID) }},
	}

	for _, step := range steps {
		if !step.present {
			continue
		}
		if err = step.replace(); err != nil {
			log.Err(err).
				Str("func", "syncService.FullSync").
				Str("user_id", userID).
				Str("kind", step.kind).
				Msg("failed to apply sync data")
			return fmt.Errorf("sync %s: %w", step.kind, err)
		}
	}

	log.Debug().
		Str("func", "syncService.FullSync").
		Str("user_id", userID).
		Int("vault_items", len(data.VaultItems)).
		Int("bridge_items", len(data.BridgeItems)).
		Msg("sync round applied")
	return nil
}
