package models

import "time"

// Folder is a user-defined container used to group vault items.
type Folder struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId,omitempty"`
	Name         string    `json:"name"`
	RevisionDate time.Time `json:"revisionDate"`
}
