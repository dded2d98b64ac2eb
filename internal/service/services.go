package service

import (
	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/keystore"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
)

type Services struct {
	BridgeItemService BridgeItemService
	SyncService       SyncService
	SyncJob           SyncJob
}

// NewServices wires the service layer over stores. source may be nil for
// consumers that only read, such as the companion application; FullSync then
// fails with [ErrNoSyncSource].
func NewServices(
	stores *store.Stores,
	keys keystore.SharedKeyRepository,
	cryptoService crypto.CryptographyService,
	source SyncSource,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	bridge := NewBridgeItemValidationService().Wrap(
		NewBridgeItemService(stores.BridgeItems, cryptoService, keys, cfg.Keys.KeyName, logger),
	)
	syncSvc := NewSyncService(source, stores, bridge, logger)

	return &Services{
		BridgeItemService: bridge,
		SyncService:       syncSvc,
		SyncJob:           NewSyncJob(syncSvc, logger),
	}
}
