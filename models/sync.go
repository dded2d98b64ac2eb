package models

// SyncData is the canonical dataset for one user as returned by the remote
// sync source. Nil slices mean "not part of this response" and leave the
// corresponding kind untouched; empty slices clear it.
type SyncData struct {
	VaultItems    []VaultItem    `json:"vaultItems"`
	Folders       []Folder       `json:"folders"`
	Collections   []Collection   `json:"collections"`
	Organizations []Organization `json:"organizations"`
	Policies      []Policy       `json:"policies"`
	Settings      *Settings      `json:"settings"`
	BridgeItems   []BridgeItem   `json:"bridgeItems"`
}
