package models

// Organization is an organization the user is a member of.
type Organization struct {
	ID                  string `json:"id"`
	UserID              string `json:"userId,omitempty"`
	Name                string `json:"name"`
	Enabled             bool   `json:"enabled"`
	UsersGetPremium     bool   `json:"usersGetPremium"`
	KeyConnectorEnabled bool   `json:"keyConnectorEnabled"`
}
