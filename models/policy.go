package models

// PolicyType identifies the kind of organization policy.
type PolicyType int

const (
	PolicyTypeTwoFactorAuthentication PolicyType = 0
	PolicyTypeMasterPassword          PolicyType = 1
	PolicyTypePasswordGenerator       PolicyType = 2
	PolicyTypeOnlyOrg                 PolicyType = 3
	PolicyTypeDisablePersonalVault    PolicyType = 6
)

// Policy is an organization policy applying to the user.
type Policy struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId,omitempty"`
	OrganizationID string         `json:"organizationId"`
	Type           PolicyType     `json:"type"`
	Enabled        bool           `json:"enabled"`
	Data           map[string]any `json:"data,omitempty"`
}
