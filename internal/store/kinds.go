// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-pass-bridge/models"

// Entity kinds persisted by the bridge store. An entity whose own UserID is
// set must match the user it is stored for.
var (
	VaultItemKind = JSONKind("vault_item",
		func(v models.VaultItem) string { return v.ID },
		func(v models.VaultItem) string { return v.UserID },
	)

	FolderKind = JSONKind("folder",
		func(v models.Folder) string { return v.ID },
		func(v models.Folder) string { return v.UserID },
	)

	CollectionKind = JSONKind("collection",
		func(v models.Collection) string { return v.ID },
		func(v models.Collection) string { return v.UserID },
	)

	OrganizationKind = JSONKind("organization",
		func(v models.Organization) string { return v.ID },
		func(v models.Organization) string { return v.UserID },
	)

	PolicyKind = JSONKind("policy",
		func(v models.Policy) string { return v.ID },
		func(v models.Policy) string { return v.UserID },
	)

	SettingsKind = JSONKind("settings",
		func(v models.Settings) string { return v.ID },
		func(v models.Settings) string { return v.UserID },
	)

	// BridgeItemKind holds items shared with the companion application.
	// Sensitive fields are stored as ciphertext.
	BridgeItemKind = JSONKind("bridge_item",
		func(v models.BridgeItem) string { return v.ID },
		func(v models.BridgeItem) string { return v.UserID },
	)
)
