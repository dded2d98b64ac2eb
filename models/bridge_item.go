package models

// BridgeItem is the value shared with the companion application through
// the shared store.
//
// Username and TOTPKey are sensitive: they are encrypted with the shared
// key before they are persisted. ID, Name and Favorite are structural and
// stay in plaintext so the companion can list items.
type BridgeItem struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId,omitempty"`
	Name     string  `json:"name"`
	Username *string `json:"username,omitempty"`
	TOTPKey  *string `json:"totpKey,omitempty"`
	Favorite bool    `json:"favorite"`
}
