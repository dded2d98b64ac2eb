package store

import (
	"github.com/MKhiriev/go-pass-bridge/models"
)

// Stores groups one [EntityStore] per entity kind, all sharing one
// [Manager]. It is built once per process and handed to the service layer.
type Stores struct {
	Manager *Manager

	VaultItems    EntityStore[models.VaultItem]
	Folders       EntityStore[models.Folder]
	Collections   EntityStore[models.Collection]
	Organizations EntityStore[models.Organization]
	Policies      EntityStore[models.Policy]
	Settings      EntityStore[models.Settings]

	// BridgeItems holds encrypted bridge items. Access it through the
	// bridge item service so sensitive fields are encrypted on write.
	BridgeItems EntityStore[models.BridgeItem]
}

// NewStores builds the entity stores of every kind over manager.
func NewStores(manager *Manager) *Stores {
	return &Stores{
		Manager:       manager,
		VaultItems:    NewEntityStore(manager, VaultItemKind),
		Folders:       NewEntityStore(manager, FolderKind),
		Collections:   NewEntityStore(manager, CollectionKind),
		Organizations: NewEntityStore(manager, OrganizationKind),
		Policies:      NewEntityStore(manager, PolicyKind),
		Settings:      NewEntityStore(manager, SettingsKind),
		BridgeItems:   NewEntityStore(manager, BridgeItemKind),
	}
}

// Close releases the shared manager.
func (s *Stores) Close() error {
	return s.Manager.Close()
}
