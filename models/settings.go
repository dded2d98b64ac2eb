package models

// Settings is the per-account settings blob delivered by the sync source.
// A user normally has exactly one, stored under the user's id.
type Settings struct {
	ID                              string     `json:"id"`
	UserID                          string     `json:"userId,omitempty"`
	EquivalentDomains               [][]string `json:"equivalentDomains,omitempty"`
	ExcludedGlobalEquivalentDomains []int      `json:"excludedGlobalEquivalentDomains,omitempty"`
}
