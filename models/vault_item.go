package models

import "time"

// VaultItemType defines the semantic type of a vault item.
type VaultItemType int

const (
	VaultItemTypeLogin      VaultItemType = 1
	VaultItemTypeSecureNote VaultItemType = 2
	VaultItemTypeCard       VaultItemType = 3
	VaultItemTypeIdentity   VaultItemType = 4
)

// VaultItem is a single item of the user's vault as delivered by the sync
// source. Its secret fields arrive already protected by the account's own
// vault encryption, so the store keeps them as opaque strings.
type VaultItem struct {
	ID             string        `json:"id"`
	UserID         string        `json:"userId,omitempty"`
	OrganizationID *string       `json:"organizationId,omitempty"`
	FolderID       *string       `json:"folderId,omitempty"`
	CollectionIDs  []string      `json:"collectionIds,omitempty"`
	Type           VaultItemType `json:"type"`
	Name           string        `json:"name"`
	Notes          *string       `json:"notes,omitempty"`
	Login          *Login        `json:"login,omitempty"`
	Favorite       bool          `json:"favorite"`
	Reprompt       bool          `json:"reprompt,omitempty"`
	RevisionDate   time.Time     `json:"revisionDate"`
	DeletedDate    *time.Time    `json:"deletedDate,omitempty"`
}

// Login holds the login-specific part of a [VaultItem].
type Login struct {
	Username *string    `json:"username,omitempty"`
	Password *string    `json:"password,omitempty"`
	TOTP     *string    `json:"totp,omitempty"`
	URIs     []LoginURI `json:"uris,omitempty"`
}

// LoginURI is one website or app URI attached to a login.
type LoginURI struct {
	URI   string `json:"uri"`
	Match *int   `json:"match,omitempty"`
}
