package models

// Collection groups organization-owned vault items.
type Collection struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId,omitempty"`
	OrganizationID string  `json:"organizationId"`
	Name           string  `json:"name"`
	ExternalID     *string `json:"externalId,omitempty"`
	ReadOnly       bool    `json:"readOnly"`
	HidePasswords  bool    `json:"hidePasswords"`
}
